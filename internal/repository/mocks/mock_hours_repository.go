package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hourlog/internal/model"
)

type MockHoursRepository struct {
	mock.Mock
}

func (m *MockHoursRepository) Insert(ctx context.Context, h model.NewHours) (*model.Hours, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hours), args.Error(1)
}

func (m *MockHoursRepository) ByID(ctx context.Context, id uuid.UUID) (*model.Hours, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hours), args.Error(1)
}

func (m *MockHoursRepository) List(ctx context.Context) ([]model.Hours, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hours), args.Error(1)
}

func (m *MockHoursRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hourlog/internal/model"
	"hourlog/internal/service"
)

type MockHoursService struct {
	mock.Mock
}

var _ service.HoursService = (*MockHoursService)(nil)

func (m *MockHoursService) Log(ctx context.Context, in model.NewHours) (*model.Hours, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hours), args.Error(1)
}

func (m *MockHoursService) List(ctx context.Context) ([]model.Hours, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hours), args.Error(1)
}

func (m *MockHoursService) Get(ctx context.Context, id uuid.UUID) (*model.Hours, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hours), args.Error(1)
}

func (m *MockHoursService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHoursService) Export(ctx context.Context) (*service.ExportResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

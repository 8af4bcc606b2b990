package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"hourlog/internal/model"
	"hourlog/internal/repository"
)

// HoursMemory is a process local implementation of repository.HoursRepository.
// One mutex guards the whole collection and every operation holds it for its full duration,
// so operations are totally ordered. Lookups scan linearly; it is meant for tests and small setups.
type HoursMemory struct {
	mu    sync.Mutex
	hours []model.Hours
}

// NewHoursMemory creates an empty in-memory repository.
func NewHoursMemory() *HoursMemory {
	return &HoursMemory{hours: make([]model.Hours, 0)}
}

var _ repository.HoursRepository = (*HoursMemory)(nil)

func (r *HoursMemory) Insert(_ context.Context, h model.NewHours) (*model.Hours, error) {
	if err := repository.CheckInsert(h); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := h.Instantiate()
	r.hours = append(r.hours, stored)

	out := stored.Clone()
	return &out, nil
}

func (r *HoursMemory) ByID(_ context.Context, id uuid.UUID) (*model.Hours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.hours {
		if h.ID == id {
			out := h.Clone()
			return &out, nil
		}
	}
	return nil, nil
}

func (r *HoursMemory) List(_ context.Context) ([]model.Hours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Hours, 0, len(r.hours))
	for _, h := range r.hours {
		out = append(out, h.Clone())
	}
	return out, nil
}

func (r *HoursMemory) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.hours {
		if h.ID == id {
			r.hours = slices.Delete(r.hours, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

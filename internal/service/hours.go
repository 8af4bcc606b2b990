package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hourlog/internal/model"
	"hourlog/internal/repository"
	"hourlog/internal/storage"
)

var (
	ErrNotFound       = errors.New("hours not found")
	ErrExportDisabled = errors.New("export storage is not configured")
)

const (
	exportPrefix      = "exports/"
	exportContentType = "application/json"
	exportURLExpiry   = 15 * time.Minute
)

// ExportResult describes a snapshot uploaded to object storage.
type ExportResult struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	URL   string `json:"url"`
}

// HoursService defines the use cases for logged hours.
type HoursService interface {
	// Log validates the input and stores it. Invalid input yields model.FieldErrors.
	Log(ctx context.Context, in model.NewHours) (*model.Hours, error)

	// List returns every logged entry.
	List(ctx context.Context) ([]model.Hours, error)

	// Get returns a single entry or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*model.Hours, error)

	// Delete removes an entry or returns ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// Export writes a JSON snapshot of all entries to object storage and returns a download URL.
	// The uploaded object is removed again if no URL can be issued.
	Export(ctx context.Context) (*ExportResult, error)
}

type hoursService struct {
	repo  repository.HoursRepository
	store storage.Storage
	now   func() time.Time
}

var _ HoursService = (*hoursService)(nil)

// NewHoursService constructs a HoursService. store may be nil, which disables Export.
func NewHoursService(repo repository.HoursRepository, store storage.Storage) HoursService {
	return &hoursService{repo: repo, store: store, now: time.Now}
}

func (s *hoursService) Log(ctx context.Context, in model.NewHours) (*model.Hours, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, in)
}

func (s *hoursService) List(ctx context.Context) ([]model.Hours, error) {
	hours, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if hours == nil {
		hours = []model.Hours{}
	}
	return hours, nil
}

func (s *hoursService) Get(ctx context.Context, id uuid.UUID) (*model.Hours, error) {
	h, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNotFound
	}
	return h, nil
}

func (s *hoursService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *hoursService) Export(ctx context.Context) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportDisabled
	}

	hours, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(hours)
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	key := exportPrefix + "hours-" + s.now().UTC().Format(time.RFC3339) + ".json"
	_, err = s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: exportContentType,
		Metadata:    map[string]string{"entries": fmt.Sprint(len(hours))},
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, exportURLExpiry)
	if err != nil {
		// Rollback: an export nobody can download is garbage.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("presign export failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign export: %w", err)
	}

	return &ExportResult{Key: key, Count: len(hours), URL: url}, nil
}

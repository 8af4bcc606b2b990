package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"hourlog/internal/model"
	"hourlog/internal/repository"
)

const (
	hoursTable = "hours"

	uniqueViolation = "23505"
	checkViolation  = "23514"
)

var hoursColumns = []string{"id", "employee", "date", "project", "story_id", "description", "hours"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// HoursPostgres is a PostgreSQL implementation of repository.HoursRepository.
// Every call borrows one pooled connection from database/sql for a single statement.
// IDs are generated here, not by the database, so both backends assign identities the same way.
type HoursPostgres struct {
	db *sql.DB
}

// NewHoursPostgres creates a new HoursPostgres repository.
func NewHoursPostgres(db *sql.DB) *HoursPostgres {
	return &HoursPostgres{db: db}
}

var _ repository.HoursRepository = (*HoursPostgres)(nil)

// hoursRow mirrors one row of the hours table.
type hoursRow struct {
	ID          uuid.UUID `db:"id"`
	Employee    string    `db:"employee"`
	Date        time.Time `db:"date"`
	Project     string    `db:"project"`
	StoryID     *string   `db:"story_id"`
	Description string    `db:"description"`
	Hours       int16     `db:"hours"`
}

func (r hoursRow) toModel() model.Hours {
	return model.Hours{
		ID:          r.ID,
		Employee:    r.Employee,
		Date:        model.DateOf(r.Date),
		Project:     r.Project,
		StoryID:     r.StoryID,
		Description: r.Description,
		Hours:       r.Hours,
	}
}

// Insert assigns a new ID, inserts the row and returns the stored entry.
func (r *HoursPostgres) Insert(ctx context.Context, h model.NewHours) (*model.Hours, error) {
	if err := repository.CheckInsert(h); err != nil {
		return nil, err
	}
	hours := h.Instantiate()

	q, args, err := psql.Insert(hoursTable).
		Columns(hoursColumns...).
		Values(hours.ID, hours.Employee, hours.Date.Time(), hours.Project, hours.StoryID, hours.Description, hours.Hours).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return nil, fmt.Errorf("insert hours %s: %w", hours.ID, repository.ErrAlreadyExists)
			case checkViolation:
				return nil, fmt.Errorf("%w: %s", repository.ErrInvalid, pgErr.ConstraintName)
			}
		}
		return nil, fmt.Errorf("%w: insert hours: %w", repository.ErrStorage, err)
	}
	return &hours, nil
}

// ByID fetches a single entry by its ID. A missing row is reported as (nil, nil).
func (r *HoursPostgres) ByID(ctx context.Context, id uuid.UUID) (*model.Hours, error) {
	q, args, err := psql.Select(hoursColumns...).
		From(hoursTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: select hours by id: %w", repository.ErrStorage, err)
	}

	var row hoursRow
	if err := sqlscan.ScanOne(&row, rows); err != nil {
		if sqlscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", repository.ErrDecode, err)
	}

	h := row.toModel()
	return &h, nil
}

// List returns all entries in database order.
func (r *HoursPostgres) List(ctx context.Context) ([]model.Hours, error) {
	q, args, err := psql.Select(hoursColumns...).From(hoursTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: select hours: %w", repository.ErrStorage, err)
	}

	var scanned []hoursRow
	if err := sqlscan.ScanAll(&scanned, rows); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrDecode, err)
	}

	items := make([]model.Hours, 0, len(scanned))
	for _, row := range scanned {
		items = append(items, row.toModel())
	}
	return items, nil
}

// Delete removes an entry by ID and reports whether a row existed.
func (r *HoursPostgres) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q, args, err := psql.Delete(hoursTable).
		Where("id = ?", id).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	var deleted uuid.UUID
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: delete hours: %w", repository.ErrStorage, err)
	}
	return true, nil
}

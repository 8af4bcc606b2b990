// Package repotest holds the behavioural suite every repository.HoursRepository must pass.
package repotest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hourlog/internal/model"
	"hourlog/internal/repository"
)

// Factory returns an empty repository. It is called once per subtest.
type Factory func(t *testing.T) repository.HoursRepository

// NewHours returns the canonical valid input used across the suite.
func NewHours() model.NewHours {
	return model.NewHours{
		Employee:    "employee",
		Date:        model.Date{Year: 2021, Month: 10, Day: 9},
		Project:     "project",
		StoryID:     nil,
		Description: "description",
		Hours:       1,
	}
}

// Run executes the suite against repositories built by newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Helper()
	ctx := context.Background()

	t.Run("by id on empty store", func(t *testing.T) {
		repo := newRepo(t)

		got, err := repo.ByID(ctx, uuid.New())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("insert then by id", func(t *testing.T) {
		repo := newRepo(t)
		in := NewHours()

		stored, err := repo.Insert(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, uuid.Nil, stored.ID)
		assert.Equal(t, in.Employee, stored.Employee)
		assert.Equal(t, in.Date, stored.Date)
		assert.Equal(t, in.Project, stored.Project)
		assert.Nil(t, stored.StoryID)
		assert.Equal(t, in.Description, stored.Description)
		assert.Equal(t, in.Hours, stored.Hours)

		got, err := repo.ByID(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("insert keeps story id", func(t *testing.T) {
		repo := newRepo(t)
		in := NewHours()
		story := "STORY-42"
		in.StoryID = &story
		in.Hours = 24

		stored, err := repo.Insert(ctx, in)
		require.NoError(t, err)

		got, err := repo.ByID(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.StoryID)
		assert.Equal(t, story, *got.StoryID)
		assert.Equal(t, int16(24), got.Hours)
	})

	t.Run("insert rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*model.NewHours)
			field  string
		}{
			{name: "zero hours", mutate: func(n *model.NewHours) { n.Hours = 0 }, field: "hours"},
			{name: "negative hours", mutate: func(n *model.NewHours) { n.Hours = -3 }, field: "hours"},
			{name: "more than a day", mutate: func(n *model.NewHours) { n.Hours = 25 }, field: "hours"},
			{name: "missing date", mutate: func(n *model.NewHours) { n.Date = model.Date{} }, field: "date"},
			{name: "impossible date", mutate: func(n *model.NewHours) { n.Date = model.Date{Year: 2021, Month: 2, Day: 30} }, field: "date"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newRepo(t)
				in := NewHours()
				tt.mutate(&in)

				stored, err := repo.Insert(ctx, in)

				assert.Nil(t, stored)
				require.ErrorIs(t, err, repository.ErrInvalid)
				var fieldErrs model.FieldErrors
				require.ErrorAs(t, err, &fieldErrs)
				require.Len(t, fieldErrs, 1)
				assert.Equal(t, tt.field, fieldErrs[0].Name)

				all, err := repo.List(ctx)
				require.NoError(t, err)
				assert.Empty(t, all)
			})
		}
	})

	t.Run("by id with unknown key on non empty store", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Insert(ctx, NewHours())
		require.NoError(t, err)

		got, err := repo.ByID(ctx, uuid.New())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete on empty store", func(t *testing.T) {
		repo := newRepo(t)

		deleted, err := repo.Delete(ctx, uuid.New())

		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("delete exactly once", func(t *testing.T) {
		repo := newRepo(t)
		stored, err := repo.Insert(ctx, NewHours())
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, stored.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := repo.ByID(ctx, stored.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err = repo.Delete(ctx, stored.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("delete unknown key keeps entries", func(t *testing.T) {
		repo := newRepo(t)
		stored, err := repo.Insert(ctx, NewHours())
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)

		got, err := repo.ByID(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("list on empty store", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("list returns every inserted entry", func(t *testing.T) {
		repo := newRepo(t)
		want := make([]model.Hours, 0, 5)
		for i := int16(1); i <= 5; i++ {
			in := NewHours()
			in.Hours = i
			stored, err := repo.Insert(ctx, in)
			require.NoError(t, err)
			want = append(want, *stored)
		}

		all, err := repo.List(ctx)

		require.NoError(t, err)
		assert.ElementsMatch(t, want, all)
	})

	t.Run("insert, get, delete, list", func(t *testing.T) {
		repo := newRepo(t)

		stored, err := repo.Insert(ctx, NewHours())
		require.NoError(t, err)

		got, err := repo.ByID(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)

		deleted, err := repo.Delete(ctx, stored.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

package model

import "github.com/google/uuid"

// Hours is a logged-hours entry owned by a repository.
// Entries are immutable once stored; the only lifecycle events are creation and deletion.
type Hours struct {
	ID          uuid.UUID `json:"id"`
	Employee    string    `json:"employee"`
	Date        Date      `json:"date" swaggertype:"string" format:"date" example:"2021-10-09"`
	Project     string    `json:"project"`
	StoryID     *string   `json:"story_id"`
	Description string    `json:"description"`
	Hours       int16     `json:"hours"`
}

// NewHours is the caller supplied input for a new entry.
// It must pass Validate before it is handed to a repository.
type NewHours struct {
	Employee    string  `json:"employee"`
	Date        Date    `json:"date" validate:"required" swaggertype:"string" format:"date" example:"2021-10-09"`
	Project     string  `json:"project"`
	StoryID     *string `json:"story_id"`
	Description string  `json:"description"`
	Hours       int16   `json:"hours" validate:"ne=0,gte=0,lte=24"`
}

// Instantiate assigns a fresh identity and copies the remaining fields verbatim.
// It assumes the input was validated already.
func (n NewHours) Instantiate() Hours {
	return Hours{
		ID:          uuid.New(),
		Employee:    n.Employee,
		Date:        n.Date,
		Project:     n.Project,
		StoryID:     cloneString(n.StoryID),
		Description: n.Description,
		Hours:       n.Hours,
	}
}

// Clone returns a copy that shares no memory with h.
func (h Hours) Clone() Hours {
	h.StoryID = cloneString(h.StoryID)
	return h
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

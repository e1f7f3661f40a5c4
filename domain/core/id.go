package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// RenderID tags a single render cycle so every log line produced while
// building one page can be tied back to the request that caused it.
type RenderID ID

// NewRenderID creates a new render cycle identifier.
func NewRenderID() RenderID { return RenderID(NewID()) }

// String returns the string representation
func (id RenderID) String() string { return ID(id).String() }

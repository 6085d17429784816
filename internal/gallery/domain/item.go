package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemType tells whether an item came out of the transform or the generate
// workflow.
type ItemType string

const (
	ItemTypeEdited    ItemType = "edited"
	ItemTypeGenerated ItemType = "generated"
)

// Item is one produced artifact. Items are immutable once created; the only
// mutation the gallery supports is deletion.
type Item struct {
	ID     string   `json:"id"`
	Src    string   `json:"src"`
	Prompt string   `json:"prompt"`
	Type   ItemType `json:"type"`

	// OriginalSrc links an edited item back to the base image of its
	// workflow run. Refine chains keep pointing at the first image, not
	// the immediately prior refinement.
	OriginalSrc string `json:"originalSrc,omitempty"`
}

// NewItemID returns a time-based unique id, most-recent-sortable. The
// random suffix keeps ids distinct when two appends share a clock tick.
func NewItemID() string {
	return time.Now().UTC().Format(time.RFC3339Nano) + "-" + uuid.NewString()[:8]
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tip is a short health or budgeting tip served alongside deals. Tips are
// fixture content; the recommendation provider draws commentary from them.
type Tip struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Category  DealCategory `json:"category,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

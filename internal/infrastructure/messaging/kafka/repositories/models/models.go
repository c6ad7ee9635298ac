package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is the envelope written to the audit topic. Content holds the
// JSON-encoded entity and Hash its sha256, which doubles as the record key.
type Message struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	Hash       string    `json:"hash"`
	ProducedAt time.Time `json:"produced_at"`
}

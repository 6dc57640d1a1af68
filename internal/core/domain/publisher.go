package domain

import (
	"errors"
	"time"
)

var ErrPublisherNotFound = errors.New("publisher not found")
var ErrPublisherExists = errors.New("publisher already exists")

// Publisher employs editors and journalists. Readers subscribe to publishers
// to receive their approved articles.
type Publisher struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

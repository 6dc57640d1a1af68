package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")
var ErrForbidden = errors.New("access forbidden")

// ErrValidation is the base error for data-layer validation failures. Wrap it
// with a field message so the HTTP layer can surface a 422 with detail.
var ErrValidation = errors.New("validation failed")

// excerptLen is the number of content characters included in notifications.
const excerptLen = 400

// Article is a piece of content written by a journalist, optionally affiliated
// with a publisher, moving through a one-way approval transition.
//
// Invariant: Approved is true iff ApprovedBy and ApprovedAt are both set. The
// three fields are stamped together by the approval transition and never
// cleared.
type Article struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	CreatedAt    time.Time  `json:"created_at"`
	JournalistID int64      `json:"journalist_id"`
	PublisherID  *int64     `json:"publisher_id,omitempty"`
	Approved     bool       `json:"approved"`
	ApprovedBy   *int64     `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
}

// ValidateAuthor enforces that only journalists may author articles. Called
// before persistence so an invalid author never reaches the store.
func ValidateAuthor(author *User) error {
	if author.Role != RoleJournalist {
		return fmt.Errorf("%w: only journalists can author articles", ErrValidation)
	}
	return nil
}

// Excerpt returns the notification body for the article: title, blank line,
// then the leading excerptLen characters of content followed by an ellipsis.
func (a *Article) Excerpt() string {
	content := a.Content
	if runes := []rune(content); len(runes) > excerptLen {
		content = string(runes[:excerptLen])
	}
	return fmt.Sprintf("%s\n\n%s...", a.Title, content)
}

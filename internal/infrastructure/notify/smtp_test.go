package notify

import (
	"strings"
	"testing"

	"github.com/pressroom/newsroom-api/internal/core/ports"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("newsroom@example.com", ports.Notification{
		ArticleID:  1,
		Subject:    "New approved article: T",
		Body:       "T\n\nbody...",
		Recipients: []string{"a@example.com", "b@example.com"},
	}))

	header, body, ok := strings.Cut(msg, "\r\n\r\n")
	if !ok {
		t.Fatalf("missing header/body separator: %q", msg)
	}
	if !strings.Contains(header, "Subject: New approved article: T") {
		t.Fatalf("missing subject header: %q", header)
	}
	if !strings.Contains(header, "To: a@example.com, b@example.com") {
		t.Fatalf("missing recipients header: %q", header)
	}
	if body != "T\n\nbody..." {
		t.Fatalf("unexpected body: %q", body)
	}
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsroom-api/internal/core/domain"
	"github.com/pressroom/newsroom-api/internal/core/ports"
)

func TestEditorHandler_Approve_RedirectsToReview(t *testing.T) {
	e := echo.New()
	stub := &stubArticleService{
		approveFn: func(ctx context.Context, articleID, editorID int64) (*domain.Article, error) {
			if articleID != 7 || editorID != 20 {
				t.Fatalf("unexpected args: article=%d editor=%d", articleID, editorID)
			}
			return &domain.Article{ID: articleID, Approved: true}, nil
		},
	}
	handler := NewEditorHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/editor/approve/7/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("article_id")
	c.SetParamValues("7")
	c.Set("user_id", int64(20))
	c.Set("role", domain.RoleEditor)

	if err := handler.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/editor/review/" {
		t.Fatalf("expected redirect to review queue, got %q", loc)
	}
}

func TestEditorHandler_Approve_MalformedID(t *testing.T) {
	e := echo.New()
	stub := &stubArticleService{
		approveFn: func(ctx context.Context, articleID, editorID int64) (*domain.Article, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEditorHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/editor/approve/not-a-number/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("article_id")
	c.SetParamValues("not-a-number")
	c.Set("user_id", int64(20))
	c.Set("role", domain.RoleEditor)

	err := handler.Approve(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestEditorHandler_Approve_UnknownArticle(t *testing.T) {
	e := echo.New()
	stub := &stubArticleService{
		approveFn: func(ctx context.Context, articleID, editorID int64) (*domain.Article, error) {
			return nil, domain.ErrArticleNotFound
		},
	}
	handler := NewEditorHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/editor/approve/999/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("article_id")
	c.SetParamValues("999")
	c.Set("user_id", int64(20))
	c.Set("role", domain.RoleEditor)

	err := handler.Approve(c)
	if !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestEditorHandler_Review_RendersPending(t *testing.T) {
	e := echo.New()
	e.Renderer = NewRenderer()
	stub := &stubArticleService{
		listPendingFn: func(ctx context.Context) ([]ports.ArticleView, error) {
			return []ports.ArticleView{
				{ID: 3, Title: "Draft Story", Content: "pending", CreatedAt: time.Now(), Journalist: "lois"},
			}, nil
		},
	}
	handler := NewEditorHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/editor/review/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Review(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Draft Story") {
		t.Fatalf("expected pending article in page, got: %s", body)
	}
	if !strings.Contains(body, "/editor/approve/3/") {
		t.Fatalf("expected approve form action in page")
	}
}

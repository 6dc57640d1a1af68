package handler

import (
	"context"
	"encoding/json"
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

type stubArticleService struct {
	createFn       func(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error)
	approveFn      func(ctx context.Context, articleID, editorID int64) (*domain.Article, error)
	feedFn         func(ctx context.Context, input ports.FeedInput) ([]ports.ArticleView, error)
	listApprovedFn func(ctx context.Context) ([]ports.ArticleView, error)
	listPendingFn  func(ctx context.Context) ([]ports.ArticleView, error)
}

func (s *stubArticleService) Create(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
	return s.createFn(ctx, input)
}

func (s *stubArticleService) Approve(ctx context.Context, articleID, editorID int64) (*domain.Article, error) {
	return s.approveFn(ctx, articleID, editorID)
}

func (s *stubArticleService) Feed(ctx context.Context, input ports.FeedInput) ([]ports.ArticleView, error) {
	return s.feedFn(ctx, input)
}

func (s *stubArticleService) ListApproved(ctx context.Context) ([]ports.ArticleView, error) {
	return s.listApprovedFn(ctx)
}

func (s *stubArticleService) ListPending(ctx context.Context) ([]ports.ArticleView, error) {
	return s.listPendingFn(ctx)
}

func strPtr(s string) *string { return &s }

func TestArticleHandler_Feed_Success(t *testing.T) {
	e := echo.New()
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	stub := &stubArticleService{
		feedFn: func(ctx context.Context, input ports.FeedInput) ([]ports.ArticleView, error) {
			if input.ReaderID != 30 || input.Role != domain.RoleReader {
				t.Fatalf("unexpected input: %+v", input)
			}
			return []ports.ArticleView{
				{ID: 2, Title: "Second", Content: "b", CreatedAt: created, Approved: true, Publisher: strPtr("Daily Planet"), Journalist: "lois"},
				{ID: 1, Title: "First", Content: "a", CreatedAt: created.Add(-time.Hour), Approved: true, Journalist: "clark"},
			}, nil
		},
	}
	handler := NewArticleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(30))
	c.Set("role", domain.RoleReader)

	if err := handler.Feed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Results []map[string]any `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	first := resp.Results[0]
	if first["title"] != "Second" || first["publisher"] != "Daily Planet" || first["journalist"] != "lois" {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if first["created_at"] != "2025-03-14T09:26:53Z" {
		t.Fatalf("unexpected created_at: %v", first["created_at"])
	}
	if resp.Results[1]["publisher"] != nil {
		t.Fatalf("expected null publisher for unaffiliated article, got %v", resp.Results[1]["publisher"])
	}
}

func TestArticleHandler_Feed_Forbidden(t *testing.T) {
	e := echo.New()
	stub := &stubArticleService{
		feedFn: func(ctx context.Context, input ports.FeedInput) ([]ports.ArticleView, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewArticleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("user_id", int64(10))
	c.Set("role", domain.RoleJournalist)

	err := handler.Feed(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestArticleHandler_Feed_MissingClaims(t *testing.T) {
	e := echo.New()
	stub := &stubArticleService{
		feedFn: func(ctx context.Context, input ports.FeedInput) ([]ports.ArticleView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewArticleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.Feed(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestArticleHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubArticleService{
		createFn: func(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
			if input.AuthorID != 10 || input.Title != "Breaking" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.PublisherID == nil || *input.PublisherID != 1 {
				t.Fatalf("expected publisher 1, got %v", input.PublisherID)
			}
			return &domain.Article{ID: 7, Title: input.Title, CreatedAt: time.Now()}, nil
		},
	}
	handler := NewArticleHandler(stub)

	body := strings.NewReader(`{"title":"Breaking","content":"story","publisher_id":1}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/articles", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(10))
	c.Set("role", domain.RoleJournalist)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(7) || resp["approved"] != false {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestArticleHandler_Create_MissingTitle(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubArticleService{
		createFn: func(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewArticleHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/articles", strings.NewReader(`{"content":"story"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("user_id", int64(10))
	c.Set("role", domain.RoleJournalist)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestArticleHandler_PublicList_RendersApproved(t *testing.T) {
	e := echo.New()
	e.Renderer = NewRenderer()
	stub := &stubArticleService{
		listApprovedFn: func(ctx context.Context) ([]ports.ArticleView, error) {
			return []ports.ArticleView{
				{ID: 1, Title: "Front Page", Content: "body", CreatedAt: time.Now(), Approved: true, Journalist: "clark"},
			}, nil
		},
	}
	handler := NewArticleHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.PublicList(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Front Page") {
		t.Fatalf("expected article title in page, got: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Independent") {
		t.Fatalf("expected unaffiliated marker in page")
	}
}

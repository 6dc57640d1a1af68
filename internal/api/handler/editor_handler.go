package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsroom-api/internal/api/metrics"
	"github.com/pressroom/newsroom-api/internal/core/ports"
)

// EditorHandler serves the editor review queue and the approval action.
type EditorHandler struct {
	service ports.ArticleService
}

func NewEditorHandler(service ports.ArticleService) *EditorHandler {
	return &EditorHandler{service: service}
}

// Review handles GET /editor/review/. It renders every article awaiting
// approval, newest first.
func (h *EditorHandler) Review(c echo.Context) error {
	views, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "review.html", articlesPage{Articles: views})
}

// Approve handles POST /editor/approve/:article_id/. On success it redirects
// back to the review queue; an unknown or malformed id is a 404.
func (h *EditorHandler) Approve(c echo.Context) error {
	editorID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}

	if _, err := h.service.Approve(c.Request().Context(), articleID, editorID); err != nil {
		return err
	}

	metrics.ArticlesApprovedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/editor/review/")
}

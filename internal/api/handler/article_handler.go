package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsroom-api/internal/api/metrics"
	"github.com/pressroom/newsroom-api/internal/core/domain"
	"github.com/pressroom/newsroom-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for the article workflow: the public
// wall, the reader feed and journalist authoring.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// --- Request / Response types ---

type createArticleRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"required"`
	PublisherID *int64 `json:"publisher_id,omitempty"`
}

type articleResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CreatedAt  string  `json:"created_at"`
	Approved   bool    `json:"approved"`
	Publisher  *string `json:"publisher"`
	Journalist string  `json:"journalist"`
}

type feedResponse struct {
	Results []articleResponse `json:"results"`
}

type createArticleResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	Approved  bool   `json:"approved"`
}

// articlesPage is the data passed to the HTML templates.
type articlesPage struct {
	Articles []ports.ArticleView
}

func toArticleResponses(views []ports.ArticleView) []articleResponse {
	out := make([]articleResponse, 0, len(views))
	for _, v := range views {
		out = append(out, articleResponse{
			ID:         v.ID,
			Title:      v.Title,
			Content:    v.Content,
			CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339),
			Approved:   v.Approved,
			Publisher:  v.Publisher,
			Journalist: v.Journalist,
		})
	}
	return out
}

// PublicList handles GET /. It renders every approved article, newest first,
// with no authentication required.
func (h *ArticleHandler) PublicList(c echo.Context) error {
	views, err := h.service.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "articles.html", articlesPage{Articles: views})
}

// Feed handles GET /api/articles/.
//
// @Summary      Subscription feed
// @Description  Approved articles from the reader's subscribed publishers and journalists.
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  feedResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/articles/ [get]
func (h *ArticleHandler) Feed(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	views, err := h.service.Feed(c.Request().Context(), ports.FeedInput{Role: role, ReaderID: userID})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.FeedRequestsTotal.WithLabelValues("forbidden").Inc()
		} else {
			metrics.FeedRequestsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.FeedRequestsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, feedResponse{Results: toArticleResponses(views)})
}

// Create handles POST /v1/articles.
//
// @Summary      Author a new article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article draft"
// @Success      201   {object}  createArticleResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	article, err := h.service.Create(c.Request().Context(), ports.CreateArticleInput{
		Title:       req.Title,
		Content:     req.Content,
		PublisherID: req.PublisherID,
		AuthorID:    userID,
	})
	if err != nil {
		return err
	}

	metrics.ArticlesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createArticleResponse{
		ID:        article.ID,
		Title:     article.Title,
		CreatedAt: article.CreatedAt.UTC().Format(time.RFC3339),
		Approved:  article.Approved,
	})
}

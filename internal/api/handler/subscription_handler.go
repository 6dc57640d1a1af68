package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsroom-api/internal/core/ports"
)

// SubscriptionHandler manages a reader's publisher and journalist
// subscriptions. All routes are reader-gated by middleware; both subscribe
// and unsubscribe are idempotent.
type SubscriptionHandler struct {
	service ports.SubscriptionService
}

func NewSubscriptionHandler(service ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// SubscribePublisher handles PUT /v1/subscriptions/publishers/:publisher_id.
//
// @Summary      Subscribe to a publisher
// @Tags         subscriptions
// @Security     BearerAuth
// @Param        publisher_id  path  int  true  "Publisher ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/subscriptions/publishers/{publisher_id} [put]
func (h *SubscriptionHandler) SubscribePublisher(c echo.Context) error {
	readerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	publisherID, err := pathID(c, "publisher_id")
	if err != nil {
		return err
	}
	if err := h.service.SubscribePublisher(c.Request().Context(), readerID, publisherID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UnsubscribePublisher handles DELETE /v1/subscriptions/publishers/:publisher_id.
//
// @Summary      Unsubscribe from a publisher
// @Tags         subscriptions
// @Security     BearerAuth
// @Param        publisher_id  path  int  true  "Publisher ID"
// @Success      204
// @Router       /v1/subscriptions/publishers/{publisher_id} [delete]
func (h *SubscriptionHandler) UnsubscribePublisher(c echo.Context) error {
	readerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	publisherID, err := pathID(c, "publisher_id")
	if err != nil {
		return err
	}
	if err := h.service.UnsubscribePublisher(c.Request().Context(), readerID, publisherID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SubscribeJournalist handles PUT /v1/subscriptions/journalists/:journalist_id.
//
// @Summary      Subscribe to a journalist
// @Tags         subscriptions
// @Security     BearerAuth
// @Param        journalist_id  path  int  true  "Journalist user ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/subscriptions/journalists/{journalist_id} [put]
func (h *SubscriptionHandler) SubscribeJournalist(c echo.Context) error {
	readerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	journalistID, err := pathID(c, "journalist_id")
	if err != nil {
		return err
	}
	if err := h.service.SubscribeJournalist(c.Request().Context(), readerID, journalistID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UnsubscribeJournalist handles DELETE /v1/subscriptions/journalists/:journalist_id.
//
// @Summary      Unsubscribe from a journalist
// @Tags         subscriptions
// @Security     BearerAuth
// @Param        journalist_id  path  int  true  "Journalist user ID"
// @Success      204
// @Router       /v1/subscriptions/journalists/{journalist_id} [delete]
func (h *SubscriptionHandler) UnsubscribeJournalist(c echo.Context) error {
	readerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	journalistID, err := pathID(c, "journalist_id")
	if err != nil {
		return err
	}
	if err := h.service.UnsubscribeJournalist(c.Request().Context(), readerID, journalistID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

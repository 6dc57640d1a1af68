package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/newsroom-api/internal/core/ports"
)

// PublisherHandler covers publisher administration: creation, listing and
// staff assignment.
type PublisherHandler struct {
	service ports.PublisherService
}

func NewPublisherHandler(service ports.PublisherService) *PublisherHandler {
	return &PublisherHandler{service: service}
}

type createPublisherRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type addStaffRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type publisherResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Create handles POST /v1/publishers.
//
// @Summary      Create a publisher
// @Tags         publishers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPublisherRequest  true  "Publisher details"
// @Success      201   {object}  publisherResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/publishers [post]
func (h *PublisherHandler) Create(c echo.Context) error {
	var req createPublisherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	publisher, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, publisherResponse{ID: publisher.ID, Name: publisher.Name})
}

// List handles GET /v1/publishers.
//
// @Summary      List publishers
// @Tags         publishers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  publisherResponse
// @Router       /v1/publishers [get]
func (h *PublisherHandler) List(c echo.Context) error {
	publishers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]publisherResponse, 0, len(publishers))
	for _, p := range publishers {
		out = append(out, publisherResponse{ID: p.ID, Name: p.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// AddStaff handles POST /v1/publishers/:publisher_id/staff. The user is
// attached to the editors or journalists set according to their role.
//
// @Summary      Attach a staff member to a publisher
// @Tags         publishers
// @Accept       json
// @Security     BearerAuth
// @Param        publisher_id  path  int              true  "Publisher ID"
// @Param        body          body  addStaffRequest  true  "Staff user"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/publishers/{publisher_id}/staff [post]
func (h *PublisherHandler) AddStaff(c echo.Context) error {
	publisherID, err := pathID(c, "publisher_id")
	if err != nil {
		return err
	}

	var req addStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.AddStaff(c.Request().Context(), publisherID, req.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

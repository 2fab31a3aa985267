package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comunidad/social-api/internal/api/metrics"
	"github.com/comunidad/social-api/internal/core/ports"
)

// EventHandler serves the community agenda.
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// Create handles POST /api/events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      createEventRequest  true  "Event"
// @Success      200   {object}  eventResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Faltan campos obligatorios")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Faltan campos obligatorios")
	}

	ev, err := h.events.Create(c.Request().Context(), ports.CreateEventInput{
		ActorID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Place:       req.Place,
	})
	if err != nil {
		return opError("Error al crear evento", err)
	}

	metrics.EventsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toEventResponse(ev, false))
}

// List handles GET /api/events, soonest first.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {array}   eventResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.events.List(c.Request().Context())
	if err != nil {
		return opError("Error al obtener eventos", err)
	}

	resp := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, toEventResponse(ev, true))
	}
	return c.JSON(http.StatusOK, resp)
}

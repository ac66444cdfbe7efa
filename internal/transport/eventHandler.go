package transport

import (
	"errors"
	"net/http"

	"github.com/akashsahu123/event-management/internal/entity"
	"github.com/akashsahu123/event-management/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	// The body stays a generic map so the permissive missing-field check
	// sees empty strings and zeroes, not their typed defaults.
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content type should be json."})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) FindEvents(c *gin.Context) {
	params := service.SearchParams{}
	for _, key := range []string{"date", "latitude", "longitude", "page"} {
		if value, ok := c.GetQuery(key); ok {
			params[key] = value
		}
	}

	result, err := h.eventService.SearchEvents(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.eventService.GetAllEvents(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// writeError maps the service error kinds onto responses. Storage and
// enrichment causes are logged here and never shown to the caller.
func (h *EventHandler) writeError(c *gin.Context, err error) {
	var valErr *entity.ValidationError
	if errors.As(err, &valErr) {
		resp := gin.H{"error": valErr.Message}
		if len(valErr.MissingFields) > 0 {
			resp["missing_fields"] = valErr.MissingFields
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	var rangeErr *entity.RangeError
	if errors.As(err, &rangeErr) {
		// Dual-purpose shape: pagination metadata plus an error field.
		c.JSON(http.StatusBadRequest, gin.H{
			"page":        rangeErr.Page,
			"pageSize":    rangeErr.PageSize,
			"totalEvents": rangeErr.TotalEvents,
			"totalPages":  rangeErr.TotalPages,
			"error":       "Page out of bounds.",
		})
		return
	}

	var enrichErr *entity.EnrichmentError
	if errors.As(err, &enrichErr) {
		logrus.WithError(err).Error("Enrichment failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error requesting upstream data."})
		return
	}

	logrus.WithError(err).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
}

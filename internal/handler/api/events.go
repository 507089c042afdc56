package api

import (
	"errors"
	"net/http"

	reqdto "campus-tickets/internal/handler/dto/request"
	resdto "campus-tickets/internal/handler/dto/response"
	"campus-tickets/internal/pkg/errs"
	"campus-tickets/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	inventoryUseCase usecase.InventoryUseCase
}

func NewEventHandler(inventoryUseCase usecase.InventoryUseCase) *EventHandler {
	return &EventHandler{
		inventoryUseCase: inventoryUseCase,
	}
}

// @Summary List events
// @Description List all events with their remaining ticket counts
// @Tags events
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /api/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	views, err := h.inventoryUseCase.ListEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]resdto.EventResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromEventView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get event
// @Description Fetch a single event with its remaining ticket count
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.inventoryUseCase.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Purchase tickets
// @Description Atomically purchase tickets for an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reqdto.PurchaseTicketsRequest false "Ticket quantity (default 1)"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/events/{id}/purchase [post]
func (h *EventHandler) PurchaseTickets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var req reqdto.PurchaseTicketsRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.inventoryUseCase.Purchase(c.Request.Context(), id, req.GetQuantity())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be a positive integer",
			})
		case errors.Is(err, errs.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errors.Is(err, errs.ErrInsufficientTickets):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough tickets remaining",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PurchaseResponse{
		Event:            resdto.FromEventEntity(result.Event),
		Purchased:        result.Purchased,
		RemainingTickets: result.Event.TicketsRemaining(),
	})
}

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

type AdminHandler struct {
	authUseCase      usecase.AuthUseCase
	inventoryUseCase usecase.InventoryUseCase
}

func NewAdminHandler(authUseCase usecase.AuthUseCase, inventoryUseCase usecase.InventoryUseCase) *AdminHandler {
	return &AdminHandler{
		authUseCase:      authUseCase,
		inventoryUseCase: inventoryUseCase,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.authUseCase.AdminLogin(req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AdminLoginResponse{Token: token})
}

// @Summary Create event
// @Description Create a new event with an initial ticket count
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event details"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/admin/events [post]
func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.inventoryUseCase.CreateEvent(c.Request.Context(), req.Name, req.Date, *req.Tickets)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventEntity(created))
}

// @Summary Set remaining tickets
// @Description Administratively set an event's remaining ticket count
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.SetTicketsRequest true "New ticket count"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/events/{id}/tickets [put]
func (h *AdminHandler) SetTickets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var req reqdto.SetTicketsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.inventoryUseCase.SetTickets(c.Request.Context(), id, *req.Tickets)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Ticket count cannot be negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventEntity(updated))
}

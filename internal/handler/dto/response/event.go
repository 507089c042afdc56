package response

import (
	"time"

	"campus-tickets/internal/domain/event"
	"campus-tickets/internal/infra/readstore"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Date             string    `json:"date"`
	TicketsRemaining int       `json:"ticketsRemaining"`
	CreatedAt        time.Time `json:"createdAt,omitzero"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

type PurchaseResponse struct {
	Event            EventResponse `json:"event"`
	Purchased        int           `json:"purchased"`
	RemainingTickets int           `json:"remainingTickets"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

func FromEventView(view *readstore.EventView) EventResponse {
	return EventResponse{
		ID:               view.ID,
		Name:             view.Name,
		Date:             view.Date,
		TicketsRemaining: view.TicketsRemaining,
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}
}

func FromEventEntity(e *event.Event) EventResponse {
	return EventResponse{
		ID:               e.ID(),
		Name:             e.Name(),
		Date:             e.Date(),
		TicketsRemaining: e.TicketsRemaining(),
	}
}

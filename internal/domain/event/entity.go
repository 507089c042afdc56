package event

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyEventName   = errors.New("event name cannot be empty")
	ErrEventNameTooLong = errors.New("event name is too long (max 255 characters)")
	ErrInvalidDate      = errors.New("event date must be YYYY-MM-DD")
	ErrNegativeTickets  = errors.New("ticket count cannot be negative")
)

const MaxEventNameLength = 255

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Event is a bookable occurrence with a finite ticket inventory. The
// tickets-remaining count only ever changes through the inventory
// repository's conditional decrement or an administrative absolute set.
type Event struct {
	id               uuid.UUID
	name             string
	date             string
	ticketsRemaining int
}

func NewEvent(name, date string, tickets int) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyEventName
	}
	if len(name) > MaxEventNameLength {
		return nil, ErrEventNameTooLong
	}
	if !datePattern.MatchString(date) {
		return nil, ErrInvalidDate
	}
	if tickets < 0 {
		return nil, ErrNegativeTickets
	}

	return &Event{
		id:               uuid.New(),
		name:             name,
		date:             date,
		ticketsRemaining: tickets,
	}, nil
}

func ReconstructEvent(id uuid.UUID, name, date string, ticketsRemaining int) *Event {
	return &Event{
		id:               id,
		name:             name,
		date:             date,
		ticketsRemaining: ticketsRemaining,
	}
}

func (e *Event) SoldOut() bool {
	return e.ticketsRemaining == 0
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) Name() string          { return e.name }
func (e *Event) Date() string          { return e.date }
func (e *Event) TicketsRemaining() int { return e.ticketsRemaining }

package usecase

import (
	"context"

	"campus-tickets/internal/domain/event"
	"campus-tickets/internal/infra"
	"campus-tickets/internal/infra/readstore"
	"campus-tickets/internal/pkg/errs"

	"github.com/google/uuid"
)

type EventReads interface {
	FindAll(ctx context.Context) ([]*readstore.EventView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readstore.EventView, error)
}

type InventoryWrites interface {
	Purchase(ctx context.Context, id uuid.UUID, quantity int) (*event.Event, error)
	Create(ctx context.Context, e *event.Event) error
	SetTickets(ctx context.Context, id uuid.UUID, tickets int) (*event.Event, error)
}

type PurchaseResult struct {
	Event     *event.Event
	Purchased int
}

type InventoryUseCase interface {
	ListEvents(ctx context.Context) ([]*readstore.EventView, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*readstore.EventView, error)
	Purchase(ctx context.Context, id uuid.UUID, quantity int) (*PurchaseResult, error)
	CreateEvent(ctx context.Context, name, date string, tickets int) (*event.Event, error)
	SetTickets(ctx context.Context, id uuid.UUID, tickets int) (*event.Event, error)
}

type inventoryUseCaseImpl struct {
	reads  EventReads
	writes InventoryWrites
}

func NewInventoryUseCase(reads EventReads, writes InventoryWrites) InventoryUseCase {
	return &inventoryUseCaseImpl{
		reads:  reads,
		writes: writes,
	}
}

func (u *inventoryUseCaseImpl) ListEvents(ctx context.Context) ([]*readstore.EventView, error) {
	views, err := u.reads.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (u *inventoryUseCaseImpl) GetEvent(ctx context.Context, id uuid.UUID) (*readstore.EventView, error) {
	view, err := u.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEventNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Purchase validates the quantity before touching inventory; the atomicity
// of the decrement itself lives in the repository statement.
func (u *inventoryUseCaseImpl) Purchase(ctx context.Context, id uuid.UUID, quantity int) (*PurchaseResult, error) {
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}

	purchased, err := u.writes.Purchase(ctx, id, quantity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrEventNotFound
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.ErrInsufficientTickets
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return &PurchaseResult{Event: purchased, Purchased: quantity}, nil
}

func (u *inventoryUseCaseImpl) CreateEvent(ctx context.Context, name, date string, tickets int) (*event.Event, error) {
	e, err := event.NewEvent(name, date, tickets)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.writes.Create(ctx, e); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return e, nil
}

func (u *inventoryUseCaseImpl) SetTickets(ctx context.Context, id uuid.UUID, tickets int) (*event.Event, error) {
	if tickets < 0 {
		return nil, errs.Mark(event.ErrNegativeTickets, errs.ErrDomainValidation)
	}

	updated, err := u.writes.SetTickets(ctx, id, tickets)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEventNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return updated, nil
}

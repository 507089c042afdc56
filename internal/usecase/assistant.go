package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"campus-tickets/internal/domain/booking"
	"campus-tickets/internal/infra/intent"
	"campus-tickets/internal/infra/readstore"
	"campus-tickets/internal/pkg/clock"
	"campus-tickets/internal/pkg/errs"
)

type IntentResolver interface {
	Resolve(ctx context.Context, utterance string) (*intent.Result, error)
}

type ReplyKind string

const (
	ReplyProposal  ReplyKind = "proposal"
	ReplyPurchased ReplyKind = "purchased"
	ReplyEvents    ReplyKind = "events"
	ReplyCancelled ReplyKind = "cancelled"
	ReplyFailure   ReplyKind = "failure"
	ReplyFallback  ReplyKind = "fallback"
	ReplyEcho      ReplyKind = "echo"
)

// Reply is what the assistant says back to the caller. Every path through
// the orchestrator produces one; failures are replies, not errors, except
// for storage faults the caller can do nothing about.
type Reply struct {
	Kind   ReplyKind
	Text   string
	Events []*readstore.EventView
	Result *PurchaseResult
}

const fallbackSuggestion = `Sorry, I didn't catch that. Try "show events" or "book two tickets for the fall concert".`

type AssistantUseCase interface {
	HandleUtterance(ctx context.Context, sessionID, utterance string) (*Reply, error)
}

// assistantUseCaseImpl is the per-conversation booking state machine. A
// session is Idle or has exactly one PendingBooking (Proposed); confirmation
// binds the proposal to a real event and commits the purchase, and every
// confirmation attempt, successful or not, returns the session to Idle.
type assistantUseCaseImpl struct {
	resolver  IntentResolver
	reads     EventReads
	inventory InventoryUseCase
	sessions  *booking.SessionStore
	clock     clock.Clock
	logger    *slog.Logger
}

func NewAssistantUseCase(
	resolver IntentResolver,
	reads EventReads,
	inventory InventoryUseCase,
	sessions *booking.SessionStore,
	clk clock.Clock,
	logger *slog.Logger,
) AssistantUseCase {
	return &assistantUseCaseImpl{
		resolver:  resolver,
		reads:     reads,
		inventory: inventory,
		sessions:  sessions,
		clock:     clk,
		logger:    logger,
	}
}

func (a *assistantUseCaseImpl) HandleUtterance(ctx context.Context, sessionID, utterance string) (*Reply, error) {
	if pending, ok := a.sessions.Get(sessionID, a.clock.Now()); ok {
		switch {
		case booking.IsAffirmative(utterance):
			return a.confirm(ctx, sessionID, pending)
		case booking.IsNegative(utterance):
			a.sessions.Clear(sessionID)
			return &Reply{Kind: ReplyCancelled, Text: "Okay, I won't book anything."}, nil
		}
		// Neither a confirmation nor a refusal: interpret as a fresh
		// utterance. A new proposal overwrites the outstanding one
		// (last-proposal-wins); anything else leaves it pending.
	}

	result, err := a.resolver.Resolve(ctx, utterance)
	if err != nil {
		if errors.Is(err, errs.ErrResolverUnavailable) {
			a.logger.Warn("intent resolver unavailable", "session_id", sessionID, "error", err)
			return &Reply{Kind: ReplyFallback, Text: fallbackSuggestion}, nil
		}
		return nil, err
	}

	switch result.Intent {
	case intent.IntentProposeBooking:
		return a.propose(sessionID, result)
	case intent.IntentShowEvents:
		return a.showEvents(ctx)
	case intent.IntentCancel:
		if _, ok := a.sessions.Get(sessionID, a.clock.Now()); ok {
			a.sessions.Clear(sessionID)
			return &Reply{Kind: ReplyCancelled, Text: "Okay, I won't book anything."}, nil
		}
		return &Reply{Kind: ReplyEcho, Text: "There's nothing to cancel right now."}, nil
	default:
		return &Reply{Kind: ReplyEcho, Text: fmt.Sprintf("You said: %q. %s", utterance, fallbackSuggestion)}, nil
	}
}

func (a *assistantUseCaseImpl) propose(sessionID string, result *intent.Result) (*Reply, error) {
	pending, err := booking.NewPendingBooking(result.EventName, result.Quantity, a.clock.Now())
	if err != nil {
		// Session stays Idle (or keeps its earlier proposal) on a bad quantity.
		return &Reply{
			Kind: ReplyFailure,
			Text: "The number of tickets has to be a positive whole number.",
		}, nil
	}
	if pending.EventName == "" {
		return &Reply{
			Kind: ReplyFailure,
			Text: "Which event would you like tickets for?",
		}, nil
	}

	replaced := a.sessions.Put(sessionID, pending)
	text := fmt.Sprintf("You'd like %d ticket(s) for %q. Shall I book that? (yes/no)", pending.Quantity, pending.EventName)
	if replaced {
		text = "I've replaced your earlier request. " + text
	}
	return &Reply{Kind: ReplyProposal, Text: text}, nil
}

func (a *assistantUseCaseImpl) showEvents(ctx context.Context) (*Reply, error) {
	views, err := a.reads.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &Reply{
		Kind:   ReplyEvents,
		Text:   fmt.Sprintf("There are %d upcoming events.", len(views)),
		Events: views,
	}, nil
}

// confirm runs the terminal action for a Proposed session: bind the free-text
// proposal to a real event, then commit the atomic purchase. The pending
// booking is discarded before anything else so no failure below can leave
// the session stuck in Proposed.
func (a *assistantUseCaseImpl) confirm(ctx context.Context, sessionID string, pending booking.PendingBooking) (*Reply, error) {
	a.sessions.Clear(sessionID)

	views, err := a.reads.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	candidates := make([]booking.Candidate, len(views))
	for i, v := range views {
		candidates[i] = booking.Candidate{ID: v.ID, Name: v.Name}
	}

	match := booking.ResolveEvent(pending.EventName, candidates)
	if match == nil {
		return &Reply{
			Kind: ReplyFailure,
			Text: fmt.Sprintf("I couldn't find an event matching %q, so nothing was booked.", pending.EventName),
		}, nil
	}

	result, err := a.inventory.Purchase(ctx, match.Candidate.ID, pending.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInsufficientTickets):
			return &Reply{
				Kind: ReplyFailure,
				Text: fmt.Sprintf("Sorry, %q doesn't have %d ticket(s) left.", match.Candidate.Name, pending.Quantity),
			}, nil
		case errors.Is(err, errs.ErrEventNotFound):
			return &Reply{
				Kind: ReplyFailure,
				Text: fmt.Sprintf("Sorry, %q is no longer available.", match.Candidate.Name),
			}, nil
		default:
			return nil, err
		}
	}

	a.logger.Info("booking confirmed",
		"session_id", sessionID,
		"event_id", result.Event.ID(),
		"quantity", result.Purchased,
		"remaining", result.Event.TicketsRemaining(),
	)
	text := fmt.Sprintf("Done! Booked %d ticket(s) for %q. %d tickets remain.",
		result.Purchased, result.Event.Name(), result.Event.TicketsRemaining())
	if result.Event.SoldOut() {
		text = fmt.Sprintf("Done! Booked %d ticket(s) for %q. That was the last of them.",
			result.Purchased, result.Event.Name())
	}
	return &Reply{
		Kind:   ReplyPurchased,
		Text:   text,
		Result: result,
	}, nil
}

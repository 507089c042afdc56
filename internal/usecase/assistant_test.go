//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"campus-tickets/internal/domain/booking"
	"campus-tickets/internal/domain/event"
	"campus-tickets/internal/infra/intent"
	"campus-tickets/internal/infra/readstore"
	"campus-tickets/internal/pkg/clock"
	"campus-tickets/internal/pkg/errs"
	"campus-tickets/internal/usecase"
	usecasemock "campus-tickets/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	sessionID  = "session-1"
	pendingTTL = 5 * time.Minute
)

type AssistantUseCaseSuite struct {
	suite.Suite

	resolver  *usecasemock.MockIntentResolver
	reads     *usecasemock.MockEventReads
	inventory *usecasemock.MockInventoryUseCase
	sessions  *booking.SessionStore
	clock     *clock.MockClock

	uc usecase.AssistantUseCase

	concertID uuid.UUID
	gameID    uuid.UUID
	views     []*readstore.EventView
}

func TestAssistantUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AssistantUseCaseSuite))
}

func (s *AssistantUseCaseSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.resolver = usecasemock.NewMockIntentResolver(ctrl)
	s.reads = usecasemock.NewMockEventReads(ctrl)
	s.inventory = usecasemock.NewMockInventoryUseCase(ctrl)
	s.sessions = booking.NewSessionStore(pendingTTL)
	s.clock = clock.NewMockClock(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	s.uc = usecase.NewAssistantUseCase(
		s.resolver,
		s.reads,
		s.inventory,
		s.sessions,
		s.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.concertID = uuid.New()
	s.gameID = uuid.New()
	s.views = []*readstore.EventView{
		{ID: s.concertID, Name: "Fall Concert 2025", Date: "2025-10-03", TicketsRemaining: 10},
		{ID: s.gameID, Name: "Basketball Game", Date: "2025-10-10", TicketsRemaining: 200},
	}
}

func (s *AssistantUseCaseSuite) proposal(eventName string, quantity int) {
	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(&intent.Result{
		Intent:    intent.IntentProposeBooking,
		EventName: eventName,
		Quantity:  quantity,
	}, nil)
}

func (s *AssistantUseCaseSuite) TestProposeThenConfirm() {
	ctx := context.Background()

	s.proposal("fall concert", 2)
	reply, err := s.uc.HandleUtterance(ctx, sessionID, "book two tickets for the fall concert")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyProposal, reply.Kind)
	s.Contains(reply.Text, "2 ticket(s)")
	s.Contains(reply.Text, "fall concert")

	s.reads.EXPECT().FindAll(gomock.Any()).Return(s.views, nil)
	s.inventory.EXPECT().Purchase(gomock.Any(), s.concertID, 2).Return(&usecase.PurchaseResult{
		Event:     event.ReconstructEvent(s.concertID, "Fall Concert 2025", "2025-10-03", 8),
		Purchased: 2,
	}, nil)

	reply, err = s.uc.HandleUtterance(ctx, sessionID, "yes")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyPurchased, reply.Kind)
	s.Contains(reply.Text, "8 tickets remain")

	// the session is Idle again: another "yes" is just an utterance
	s.resolver.EXPECT().Resolve(gomock.Any(), "yes").Return(&intent.Result{Intent: intent.IntentUnknown, Quantity: 1}, nil)
	reply, err = s.uc.HandleUtterance(ctx, sessionID, "yes")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyEcho, reply.Kind)
}

func (s *AssistantUseCaseSuite) TestConfirmBuyingTheLastTickets() {
	ctx := context.Background()

	s.proposal("fall concert", 10)
	_, err := s.uc.HandleUtterance(ctx, sessionID, "book ten tickets for the fall concert")
	s.Require().NoError(err)

	s.reads.EXPECT().FindAll(gomock.Any()).Return(s.views, nil)
	s.inventory.EXPECT().Purchase(gomock.Any(), s.concertID, 10).Return(&usecase.PurchaseResult{
		Event:     event.ReconstructEvent(s.concertID, "Fall Concert 2025", "2025-10-03", 0),
		Purchased: 10,
	}, nil)

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "yes")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyPurchased, reply.Kind)
	s.Contains(reply.Text, "last of them")
}

func (s *AssistantUseCaseSuite) TestProposeThenDecline() {
	ctx := context.Background()

	s.proposal("fall concert", 1)
	_, err := s.uc.HandleUtterance(ctx, sessionID, "book a ticket for the fall concert")
	s.Require().NoError(err)

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "no")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyCancelled, reply.Kind)

	_, ok := s.sessions.Get(sessionID, s.clock.Now())
	s.False(ok)
}

func (s *AssistantUseCaseSuite) TestLastProposalWins() {
	ctx := context.Background()

	s.proposal("fall concert", 2)
	_, err := s.uc.HandleUtterance(ctx, sessionID, "book two tickets for the fall concert")
	s.Require().NoError(err)

	s.proposal("basketball game", 4)
	reply, err := s.uc.HandleUtterance(ctx, sessionID, "actually make it four for the basketball game")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyProposal, reply.Kind)
	s.Contains(reply.Text, "replaced")

	// confirming books the second proposal, not the first
	s.reads.EXPECT().FindAll(gomock.Any()).Return(s.views, nil)
	s.inventory.EXPECT().Purchase(gomock.Any(), s.gameID, 4).Return(&usecase.PurchaseResult{
		Event:     event.ReconstructEvent(s.gameID, "Basketball Game", "2025-10-10", 196),
		Purchased: 4,
	}, nil)

	reply, err = s.uc.HandleUtterance(ctx, sessionID, "yes")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyPurchased, reply.Kind)
}

func (s *AssistantUseCaseSuite) TestConfirmSoldOutReturnsToIdle() {
	ctx := context.Background()

	s.proposal("fall concert", 20)
	_, err := s.uc.HandleUtterance(ctx, sessionID, "book twenty tickets for the fall concert")
	s.Require().NoError(err)

	s.reads.EXPECT().FindAll(gomock.Any()).Return(s.views, nil)
	s.inventory.EXPECT().Purchase(gomock.Any(), s.concertID, 20).Return(nil, errs.ErrInsufficientTickets)

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "yes")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyFailure, reply.Kind)
	s.Contains(reply.Text, "doesn't have 20 ticket(s) left")

	// a failed confirmation must not leave the proposal pending
	_, ok := s.sessions.Get(sessionID, s.clock.Now())
	s.False(ok)
}

func (s *AssistantUseCaseSuite) TestConfirmNoMatchingEventReturnsToIdle() {
	ctx := context.Background()

	s.proposal("underwater chess", 1)
	_, err := s.uc.HandleUtterance(ctx, sessionID, "book a ticket for underwater chess")
	s.Require().NoError(err)

	s.reads.EXPECT().FindAll(gomock.Any()).Return(s.views, nil)

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "yes")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyFailure, reply.Kind)
	s.Contains(reply.Text, "nothing was booked")

	_, ok := s.sessions.Get(sessionID, s.clock.Now())
	s.False(ok)
}

func (s *AssistantUseCaseSuite) TestInvalidQuantityProposalStaysIdle() {
	ctx := context.Background()

	s.proposal("fall concert", 0)
	reply, err := s.uc.HandleUtterance(ctx, sessionID, "book zero tickets for the fall concert")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyFailure, reply.Kind)

	_, ok := s.sessions.Get(sessionID, s.clock.Now())
	s.False(ok)
}

func (s *AssistantUseCaseSuite) TestProposalWithoutEventNameStaysIdle() {
	ctx := context.Background()

	s.proposal("   ", 2)
	reply, err := s.uc.HandleUtterance(ctx, sessionID, "book two tickets")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyFailure, reply.Kind)
	s.Contains(reply.Text, "Which event")

	_, ok := s.sessions.Get(sessionID, s.clock.Now())
	s.False(ok)
}

func (s *AssistantUseCaseSuite) TestResolverUnavailableFallsBack() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("connection refused"), errs.ErrResolverUnavailable))

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "book two tickets for the fall concert")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyFallback, reply.Kind)
	s.Contains(reply.Text, "show events")
}

func (s *AssistantUseCaseSuite) TestShowEvents() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(&intent.Result{Intent: intent.IntentShowEvents, Quantity: 1}, nil)
	s.reads.EXPECT().FindAll(gomock.Any()).Return(s.views, nil)

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "what events are coming up?")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyEvents, reply.Kind)
	s.Len(reply.Events, 2)
}

func (s *AssistantUseCaseSuite) TestUnknownIntentEchoes() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(&intent.Result{Intent: intent.IntentUnknown, Quantity: 1}, nil)

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "how is the weather")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyEcho, reply.Kind)
	s.Contains(reply.Text, `"how is the weather"`)
}

func (s *AssistantUseCaseSuite) TestCancelIntentWithPending() {
	ctx := context.Background()

	s.proposal("fall concert", 1)
	_, err := s.uc.HandleUtterance(ctx, sessionID, "book a ticket for the fall concert")
	s.Require().NoError(err)

	// "cancel" is a negative token, so the pending branch handles it
	reply, err := s.uc.HandleUtterance(ctx, sessionID, "cancel")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyCancelled, reply.Kind)
}

func (s *AssistantUseCaseSuite) TestCancelIntentWithoutPending() {
	ctx := context.Background()

	s.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(&intent.Result{Intent: intent.IntentCancel, Quantity: 1}, nil)

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "forget the whole thing")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyEcho, reply.Kind)
	s.Contains(reply.Text, "nothing to cancel")
}

func (s *AssistantUseCaseSuite) TestExpiredProposalIsForgotten() {
	ctx := context.Background()

	s.proposal("fall concert", 2)
	_, err := s.uc.HandleUtterance(ctx, sessionID, "book two tickets for the fall concert")
	s.Require().NoError(err)

	s.clock.Add(pendingTTL + time.Minute)

	// "yes" no longer confirms anything; it goes to the resolver as a
	// fresh utterance
	s.resolver.EXPECT().Resolve(gomock.Any(), "yes").
		Return(&intent.Result{Intent: intent.IntentUnknown, Quantity: 1}, nil)

	reply, err := s.uc.HandleUtterance(ctx, sessionID, "yes")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyEcho, reply.Kind)
}

func (s *AssistantUseCaseSuite) TestSessionsAreIndependent() {
	ctx := context.Background()

	s.proposal("fall concert", 1)
	_, err := s.uc.HandleUtterance(ctx, "session-a", "book a ticket for the fall concert")
	s.Require().NoError(err)

	// a confirmation on a different session does not see session-a's proposal
	s.resolver.EXPECT().Resolve(gomock.Any(), "yes").
		Return(&intent.Result{Intent: intent.IntentUnknown, Quantity: 1}, nil)
	reply, err := s.uc.HandleUtterance(ctx, "session-b", "yes")
	s.Require().NoError(err)
	s.Equal(usecase.ReplyEcho, reply.Kind)

	_, ok := s.sessions.Get("session-a", s.clock.Now())
	s.True(ok)
}

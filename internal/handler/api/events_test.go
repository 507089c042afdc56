//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-tickets/internal/domain/event"
	"campus-tickets/internal/handler/api"
	"campus-tickets/internal/infra/readstore"
	"campus-tickets/internal/pkg/errs"
	"campus-tickets/internal/usecase"
	usecasemock "campus-tickets/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerSuite struct {
	suite.Suite

	inventory *usecasemock.MockInventoryUseCase
	router    *gin.Engine
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerSuite))
}

func (s *EventHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(s.T())
	s.inventory = usecasemock.NewMockInventoryUseCase(ctrl)

	handler := api.NewEventHandler(s.inventory)
	s.router = gin.New()
	s.router.GET("/api/events", handler.ListEvents)
	s.router.GET("/api/events/:id", handler.GetEvent)
	s.router.POST("/api/events/:id/purchase", handler.PurchaseTickets)
}

func (s *EventHandlerSuite) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *EventHandlerSuite) TestListEvents() {
	views := []*readstore.EventView{
		{ID: uuid.New(), Name: "Fall Concert 2025", Date: "2025-10-03", TicketsRemaining: 10},
		{ID: uuid.New(), Name: "Basketball Game", Date: "2025-10-10", TicketsRemaining: 200},
	}
	s.inventory.EXPECT().ListEvents(gomock.Any()).Return(views, nil)

	w := s.request(http.MethodGet, "/api/events", "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Fall Concert 2025")
	s.Contains(w.Body.String(), "Basketball Game")
}

func (s *EventHandlerSuite) TestListEventsEmpty() {
	s.inventory.EXPECT().ListEvents(gomock.Any()).Return([]*readstore.EventView{}, nil)

	w := s.request(http.MethodGet, "/api/events", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("[]", w.Body.String())
}

func (s *EventHandlerSuite) TestListEventsFailure() {
	s.inventory.EXPECT().ListEvents(gomock.Any()).Return(nil, errs.ErrDatabaseOperationFailed)

	w := s.request(http.MethodGet, "/api/events", "")

	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *EventHandlerSuite) TestGetEvent() {
	id := uuid.New()
	s.inventory.EXPECT().GetEvent(gomock.Any(), id).Return(&readstore.EventView{
		ID: id, Name: "Fall Concert 2025", Date: "2025-10-03", TicketsRemaining: 10,
	}, nil)

	w := s.request(http.MethodGet, "/api/events/"+id.String(), "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Fall Concert 2025")
	s.Contains(w.Body.String(), `"ticketsRemaining":10`)
}

func (s *EventHandlerSuite) TestGetEventNotFound() {
	id := uuid.New()
	s.inventory.EXPECT().GetEvent(gomock.Any(), id).Return(nil, errs.ErrEventNotFound)

	w := s.request(http.MethodGet, "/api/events/"+id.String(), "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *EventHandlerSuite) TestGetEventInvalidID() {
	w := s.request(http.MethodGet, "/api/events/not-a-uuid", "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *EventHandlerSuite) TestPurchaseTickets() {
	id := uuid.New()
	s.inventory.EXPECT().Purchase(gomock.Any(), id, 3).Return(&usecase.PurchaseResult{
		Event:     event.ReconstructEvent(id, "Fall Concert 2025", "2025-10-03", 7),
		Purchased: 3,
	}, nil)

	w := s.request(http.MethodPost, "/api/events/"+id.String()+"/purchase", `{"quantity":3}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"purchased":3`)
	s.Contains(w.Body.String(), `"remainingTickets":7`)
}

func (s *EventHandlerSuite) TestPurchaseWithoutBodyDefaultsToOne() {
	id := uuid.New()
	s.inventory.EXPECT().Purchase(gomock.Any(), id, 1).Return(&usecase.PurchaseResult{
		Event:     event.ReconstructEvent(id, "Fall Concert 2025", "2025-10-03", 9),
		Purchased: 1,
	}, nil)

	w := s.request(http.MethodPost, "/api/events/"+id.String()+"/purchase", "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"purchased":1`)
}

func (s *EventHandlerSuite) TestPurchaseInvalidEventID() {
	w := s.request(http.MethodPost, "/api/events/not-a-uuid/purchase", `{"quantity":1}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *EventHandlerSuite) TestPurchaseMalformedBody() {
	id := uuid.New()

	w := s.request(http.MethodPost, "/api/events/"+id.String()+"/purchase", `{"quantity":"two"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *EventHandlerSuite) TestPurchaseInvalidQuantity() {
	id := uuid.New()
	s.inventory.EXPECT().Purchase(gomock.Any(), id, 0).Return(nil, errs.ErrInvalidQuantity)

	w := s.request(http.MethodPost, "/api/events/"+id.String()+"/purchase", `{"quantity":0}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *EventHandlerSuite) TestPurchaseEventNotFound() {
	id := uuid.New()
	s.inventory.EXPECT().Purchase(gomock.Any(), id, 1).Return(nil, errs.ErrEventNotFound)

	w := s.request(http.MethodPost, "/api/events/"+id.String()+"/purchase", `{"quantity":1}`)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *EventHandlerSuite) TestPurchaseSoldOut() {
	id := uuid.New()
	s.inventory.EXPECT().Purchase(gomock.Any(), id, 5).Return(nil, errs.ErrInsufficientTickets)

	w := s.request(http.MethodPost, "/api/events/"+id.String()+"/purchase", `{"quantity":5}`)

	s.Equal(http.StatusConflict, w.Code)
}

//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

type AssistantHandlerSuite struct {
	suite.Suite

	assistant *usecasemock.MockAssistantUseCase
	router    *gin.Engine
}

func TestAssistantHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssistantHandlerSuite))
}

func (s *AssistantHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(s.T())
	s.assistant = usecasemock.NewMockAssistantUseCase(ctrl)

	handler := api.NewAssistantHandler(s.assistant)
	s.router = gin.New()
	s.router.POST("/api/assistant/messages", handler.PostMessage)
}

func (s *AssistantHandlerSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AssistantHandlerSuite) TestPostMessageProposal() {
	s.assistant.EXPECT().
		HandleUtterance(gomock.Any(), "kiosk-7", "book two tickets for the fall concert").
		Return(&usecase.Reply{
			Kind: usecase.ReplyProposal,
			Text: `You'd like 2 ticket(s) for "fall concert". Shall I book that? (yes/no)`,
		}, nil)

	w := s.post(`{"sessionId":"kiosk-7","utterance":"book two tickets for the fall concert"}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"kind":"proposal"`)
	s.Contains(w.Body.String(), "Shall I book that?")
}

func (s *AssistantHandlerSuite) TestPostMessageEventsReply() {
	s.assistant.EXPECT().
		HandleUtterance(gomock.Any(), "kiosk-7", "show events").
		Return(&usecase.Reply{
			Kind: usecase.ReplyEvents,
			Text: "There are 1 upcoming events.",
			Events: []*readstore.EventView{
				{ID: uuid.New(), Name: "Fall Concert 2025", Date: "2025-10-03", TicketsRemaining: 10},
			},
		}, nil)

	w := s.post(`{"sessionId":"kiosk-7","utterance":"show events"}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"kind":"events"`)
	s.Contains(w.Body.String(), "Fall Concert 2025")
}

func (s *AssistantHandlerSuite) TestPostMessageMissingSessionID() {
	w := s.post(`{"utterance":"show events"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssistantHandlerSuite) TestPostMessageMissingUtterance() {
	w := s.post(`{"sessionId":"kiosk-7"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssistantHandlerSuite) TestPostMessageMalformedJSON() {
	w := s.post(`{"sessionId":`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AssistantHandlerSuite) TestPostMessageStorageFailure() {
	s.assistant.EXPECT().
		HandleUtterance(gomock.Any(), "kiosk-7", "yes").
		Return(nil, errs.ErrDatabaseOperationFailed)

	w := s.post(`{"sessionId":"kiosk-7","utterance":"yes"}`)

	s.Equal(http.StatusInternalServerError, w.Code)
}

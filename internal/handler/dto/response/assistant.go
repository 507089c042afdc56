package response

import (
	"campus-tickets/internal/usecase"
)

type AssistantReplyResponse struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text"`
	Events   []EventResponse   `json:"events,omitempty"`
	Purchase *PurchaseResponse `json:"purchase,omitempty"`
}

func FromAssistantReply(reply *usecase.Reply) *AssistantReplyResponse {
	resp := &AssistantReplyResponse{
		Kind: string(reply.Kind),
		Text: reply.Text,
	}

	if len(reply.Events) > 0 {
		resp.Events = make([]EventResponse, len(reply.Events))
		for i, v := range reply.Events {
			resp.Events[i] = FromEventView(v)
		}
	}

	if reply.Result != nil {
		resp.Purchase = &PurchaseResponse{
			Event:            FromEventEntity(reply.Result.Event),
			Purchased:        reply.Result.Purchased,
			RemainingTickets: reply.Result.Event.TicketsRemaining(),
		}
	}

	return resp
}

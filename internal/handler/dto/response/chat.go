package response

import (
	"time"

	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ChatReplyResponse struct {
	Reply string `json:"reply"`
	Mode  string `json:"mode"`
}

type ContactLeadResponse struct {
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	Message    string    `json:"message"`
	CapturedAt time.Time `json:"capturedAt"`
}

func FromChatReply(reply *commands.ChatReply) *ChatReplyResponse {
	return &ChatReplyResponse{
		Reply: reply.Reply,
		Mode:  string(reply.Mode),
	}
}

func FromContactLeadView(view *queries.ContactLeadView) *ContactLeadResponse {
	var resp ContactLeadResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

package commands

import (
	"context"
	"strings"

	"travel-booking/internal/domain/chat"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ChatSessionStore interface {
	LoadChatSession(ctx context.Context, clientID uuid.UUID) (chat.Session, error)
	SaveChatSession(ctx context.Context, clientID uuid.UUID, session chat.Session) error
}

type LeadStore interface {
	AppendLead(ctx context.Context, lead chat.Lead) error
}

type ChatReply struct {
	Reply string
	Mode  chat.Mode
}

type ChatCommands interface {
	RecordMessage(ctx context.Context, clientID uuid.UUID, text string) (*ChatReply, error)
}

type chatCommandsImpl struct {
	sessions  ChatSessionStore
	leads     LeadStore
	responder *chat.Responder
	clock     clock.Clock
}

func NewChatCommands(
	sessions ChatSessionStore,
	leads LeadStore,
	responder *chat.Responder,
	clk clock.Clock,
) ChatCommands {
	return &chatCommandsImpl{
		sessions:  sessions,
		leads:     leads,
		responder: responder,
		clock:     clk,
	}
}

func (c *chatCommandsImpl) RecordMessage(ctx context.Context, clientID uuid.UUID, text string) (*ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errs.New("message text is required")
	}

	session, err := c.sessions.LoadChatSession(ctx, clientID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	reply, next, lead := c.responder.Respond(session, text, c.clock.Now())

	if lead != nil {
		if err := c.leads.AppendLead(ctx, *lead); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}

	if err := c.sessions.SaveChatSession(ctx, clientID, next); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return &ChatReply{Reply: reply, Mode: next.Mode}, nil
}

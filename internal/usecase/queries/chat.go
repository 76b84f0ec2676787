package queries

import (
	"context"

	"travel-booking/internal/domain/chat"
	"travel-booking/internal/pkg/errs"
)

type LeadReadStore interface {
	ListLeads(ctx context.Context) ([]chat.Lead, error)
}

type ChatQueries interface {
	ListContactLeads(ctx context.Context) ([]*ContactLeadView, error)
}

type chatQueriesImpl struct {
	leads LeadReadStore
}

func NewChatQueries(leads LeadReadStore) ChatQueries {
	return &chatQueriesImpl{leads: leads}
}

func (q *chatQueriesImpl) ListContactLeads(ctx context.Context) ([]*ContactLeadView, error) {
	leads, err := q.leads.ListLeads(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	views := make([]*ContactLeadView, len(leads))
	for i, lead := range leads {
		views[i] = NewContactLeadView(lead)
	}
	return views, nil
}

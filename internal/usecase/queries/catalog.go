package queries

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/errs"
)

type CatalogSearcher interface {
	Search(ctx context.Context, tripType booking.TripType, query string) ([]booking.Item, error)
}

type CatalogQueries interface {
	SearchCatalog(ctx context.Context, tripType booking.TripType, query string) ([]*ItemView, error)
}

type catalogQueriesImpl struct {
	catalog CatalogSearcher
}

func NewCatalogQueries(catalog CatalogSearcher) CatalogQueries {
	return &catalogQueriesImpl{catalog: catalog}
}

func (q *catalogQueriesImpl) SearchCatalog(ctx context.Context, tripType booking.TripType, query string) ([]*ItemView, error) {
	items, err := q.catalog.Search(ctx, tripType, query)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCatalogUnavailable)
	}

	views := make([]*ItemView, 0, len(items))
	for _, item := range items {
		view, err := NewItemView(item)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

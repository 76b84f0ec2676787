package components

import (
	"travel-booking/internal/infra/catalog"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.CatalogConfig { return cfg.Catalog },
		fx.Annotate(
			store.NewRedisKV,
			fx.As(new(store.KV)),
		),
		fx.Annotate(
			store.NewBookingStore,
			fx.As(new(commands.DraftStore)),
			fx.As(new(commands.ConfirmationStore)),
			fx.As(new(commands.ChatSessionStore)),
			fx.As(new(commands.LeadStore)),
			fx.As(new(queries.DraftReadStore)),
			fx.As(new(queries.ConfirmationReadStore)),
			fx.As(new(queries.LeadReadStore)),
		),
		fx.Annotate(
			store.NewIdempotencyStore,
			fx.As(new(commands.IdempotencyStore)),
		),
		fx.Annotate(
			catalog.NewClient,
			fx.As(new(queries.CatalogSearcher)),
		),
	),
)

package components

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/chat"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewStandardPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	fx.Annotate(
		booking.NewRandomNumberGenerator,
		fx.As(new(booking.NumberGenerator)),
	),
	func() *chat.Responder {
		return chat.NewResponder(chat.DefaultRules(), chat.DefaultFallbacks())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewChatCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
		queries.NewChatQueries,
	),
)

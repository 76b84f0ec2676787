package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/infra/events"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, client *redis.Client, cfg config.Config, logger *slog.Logger) (*events.Publisher, error) {
	verbose := logger.Enabled(context.Background(), slog.LevelDebug)
	publisher, err := events.NewRedisPublisher(client, watermill.NewStdLogger(verbose, verbose), cfg.Booking.EventTopic)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

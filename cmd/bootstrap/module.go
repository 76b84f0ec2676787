package bootstrap

import (
	"travel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	EventsModule,
	components.StoreModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)

package components

import (
	"travel-booking/internal/infra/payment"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(clk clock.Clock, cfg config.Config) *payment.Simulator {
	return payment.NewSimulator(clk, cfg.Payment)
}

//go:build wireinject
// +build wireinject

package di

import (
	"github.com/pgmarco11/crypto-strategy-hub-api/pkg/config"
	"github.com/pgmarco11/crypto-strategy-hub-api/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Repository and outbound clients
		ProvidePortfolioRepository,
		ProvideMarketData,
		ProvidePredictor,

		// Use cases
		ProvidePortfolioService,
		ProvidePredictionService,

		// HTTP surface
		ProvideRouter,
		ProvideApp,
	)
	return &server.App{}, nil
}

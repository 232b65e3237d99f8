package di

import (
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/repository"
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/handler/api"
	internalrepo "github.com/pgmarco11/crypto-strategy-hub-api/internal/repository"
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/service/coingecko"
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/service/predictor"
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/usecase"
	"github.com/pgmarco11/crypto-strategy-hub-api/pkg/config"
	xhttp "github.com/pgmarco11/crypto-strategy-hub-api/pkg/http"
	applogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"
	"github.com/pgmarco11/crypto-strategy-hub-api/pkg/metrics"
	"github.com/pgmarco11/crypto-strategy-hub-api/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return applogger.New(lc)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvidePortfolioRepository creates the file-backed portfolio store.
func ProvidePortfolioRepository(cfg *config.Config, l *applogger.Logger, m repository.Metrics) repository.PortfolioRepository {
	return internalrepo.NewFileStore(cfg.Store.File, l, m)
}

// ProvideMarketData creates the CoinGecko client.
func ProvideMarketData(cfg *config.Config, m repository.Metrics) repository.MarketData {
	return coingecko.New(
		cfg.CoinGecko.BaseURL,
		cfg.CoinGecko.APIKey,
		cfg.CoinGecko.Days,
		cfg.CoinGecko.Timeout,
		m,
	)
}

// ProvidePredictor creates the prediction-service client.
func ProvidePredictor(cfg *config.Config, m repository.Metrics) repository.Predictor {
	return predictor.New(cfg.Prediction.BaseURL, cfg.Prediction.Timeout, m)
}

// ProvidePortfolioService creates the portfolio use case.
func ProvidePortfolioService(repo repository.PortfolioRepository, l *applogger.Logger) *usecase.PortfolioService {
	return usecase.NewPortfolioService(repo, l)
}

// ProvidePredictionService creates the prediction use case.
func ProvidePredictionService(market repository.MarketData, pred repository.Predictor, l *applogger.Logger) *usecase.PredictionService {
	return usecase.NewPredictionService(market, pred, l)
}

// ProvideRouter bundles the API handlers.
func ProvideRouter(l *applogger.Logger, ps *usecase.PortfolioService, pr *usecase.PredictionService) xhttp.Handler {
	return api.NewRouter(
		api.NewPortfoliosEchoHandler(l, ps),
		api.NewPredictionsEchoHandler(l, pr),
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}

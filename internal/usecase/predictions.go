package usecase

import (
	"context"
	"encoding/json"

	domrepo "github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/repository"
	xhttp "github.com/pgmarco11/crypto-strategy-hub-api/pkg/http"
	applogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"
)

// PredictionService chains the market-data fetch with the prediction
// forwarding. Upstream failures are logged with their detail and surfaced to
// callers as opaque 500s.
type PredictionService struct {
	market    domrepo.MarketData
	predictor domrepo.Predictor
	logger    *applogger.Logger
}

func NewPredictionService(market domrepo.MarketData, predictor domrepo.Predictor, l *applogger.Logger) *PredictionService {
	return &PredictionService{market: market, predictor: predictor, logger: l}
}

// PredictFromMarket fetches the coin's trailing daily close history and
// forwards it to the prediction service, returning the response verbatim.
func (s *PredictionService) PredictFromMarket(ctx context.Context, coin string) ([]byte, error) {
	history, err := s.market.History(ctx, coin)
	if err != nil {
		s.logger.Error("market data fetch failed", applogger.String("coin", coin), applogger.Error(err))
		return nil, xhttp.UpstreamError("market data", err)
	}

	payload, err := s.predictor.Predict(ctx, history)
	if err != nil {
		s.logger.Error("prediction forward failed", applogger.String("coin", coin), applogger.Error(err))
		return nil, xhttp.UpstreamError("prediction", err)
	}
	return payload, nil
}

// PredictFromSeries forwards a client-supplied historical series untouched.
func (s *PredictionService) PredictFromSeries(ctx context.Context, coin string, series []json.RawMessage) ([]byte, error) {
	payload, err := s.predictor.Predict(ctx, series)
	if err != nil {
		s.logger.Error("prediction forward failed", applogger.String("coin", coin), applogger.Error(err))
		return nil, xhttp.UpstreamError("prediction", err)
	}
	return payload, nil
}

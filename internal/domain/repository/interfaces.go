package repository

import (
	"context"

	"github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/models"
)

// PortfolioRepository owns the in-memory portfolio collection and its file
// mirror. Reads never touch the file; every mutation rewrites it wholesale.
type PortfolioRepository interface {
	All() []models.Portfolio
	Get(id string) (models.Portfolio, bool)
	Insert(p models.Portfolio) error
	Update(id string, patch models.Portfolio) (models.Portfolio, bool, error)
	UpdateFields(id string, patch models.Portfolio) (models.Portfolio, bool, error)
	Remove(id string) (models.Portfolio, bool, error)
}

// MarketData provides historical daily closes for an asset symbol.
type MarketData interface {
	History(ctx context.Context, coin string) ([]models.HistoricalPoint, error)
}

// Predictor forwards a historical series to the prediction service and
// returns its response verbatim. The series may be typed points or raw
// client-supplied JSON; it is marshalled as-is.
type Predictor interface {
	Predict(ctx context.Context, history interface{}) ([]byte, error)
}

type Metrics interface {
	RecordPersistError()
	RecordUpstreamRequest(service, outcome string)
	RecordUpstreamLatency(service string, seconds float64)
	RecordPortfolioCount(n int)
}

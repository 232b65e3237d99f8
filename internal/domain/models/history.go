package models

import "github.com/shopspring/decimal"

func init() {
	// The prediction service expects plain JSON numbers, not quoted decimals.
	decimal.MarshalJSONWithoutQuotes = true
}

// HistoricalPoint is one daily close in a price series, as forwarded to the
// prediction service. Never persisted.
type HistoricalPoint struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Value decimal.Decimal `json:"value"`
}

package models

import "encoding/json"

// PredictRequest is the body of POST /api/predictions/:coinId. The points are
// kept raw and forwarded verbatim; only the array shape is enforced.
type PredictRequest struct {
	HistoricalData []json.RawMessage `json:"historical_data" validate:"required"`
}

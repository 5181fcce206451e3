// File: models/prediction.go
package models

import (
	"fmt"
	"math"
)

// MatchPrediction is the estimation service's guess at how many matches a
// tournament with a given image count will take.
type MatchPrediction struct {
	EstimatedMatches   float64    `json:"estimated_matches"`
	ConfidenceInterval [2]float64 `json:"confidence_interval"`
	ConfidenceLevel    string     `json:"confidence_level"`
}

// Format renders the prediction the way the play screen shows it:
// rounded estimate, then the interval with the lower bound rounded down and
// the upper bound rounded up, e.g. "12~10-14".
func (p MatchPrediction) Format() string {
	lower := int(math.Floor(p.ConfidenceInterval[0]))
	upper := int(math.Ceil(p.ConfidenceInterval[1]))
	return fmt.Sprintf("%d~%d-%d", int(math.Round(p.EstimatedMatches)), lower, upper)
}

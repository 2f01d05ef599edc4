package report

import (
	"math"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Summary is the sum, count and average of a set of transactions. An empty
// set yields zeros, never NaN.
type Summary struct {
	Sum     float64 `json:"sum"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

func Summarize(sum float64, count int64) Summary {
	s := Summary{Sum: Round2(sum), Count: count}
	if count > 0 {
		s.Average = Round2(sum / float64(count))
	}
	return s
}

func SumAmounts(txs []models.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		total += tx.Amount
	}
	return total
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package report

import "github.com/BruksfildServices01/barber-manager/internal/models"

type BarberCount struct {
	BarberID uint
	Count    int
}

// Tally counts transactions per barber. The result keeps the order in which
// each barber was first seen, which is what breaks ties in Top.
func Tally(txs []models.Transaction) []BarberCount {
	index := make(map[uint]int, len(txs))
	out := make([]BarberCount, 0)

	for _, tx := range txs {
		if i, ok := index[tx.BarberID]; ok {
			out[i].Count++
			continue
		}
		index[tx.BarberID] = len(out)
		out = append(out, BarberCount{BarberID: tx.BarberID, Count: 1})
	}

	return out
}

// Top returns the barber with the strictly greatest count. On a tie the
// earlier entry wins.
func Top(counts []BarberCount) (BarberCount, bool) {
	var best BarberCount
	found := false
	for _, c := range counts {
		if !found || c.Count > best.Count {
			best = c
			found = true
		}
	}
	return best, found
}

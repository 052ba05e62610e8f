package resolver

import "auction-marketplace/internal/models"

// HighestBid returns the bid with the greatest amount. When several bids share
// that amount the earliest one in input order is kept.
func HighestBid(bids []models.Bid) (models.Bid, bool) {
	if len(bids) == 0 {
		return models.Bid{}, false
	}

	best := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > best.Amount {
			best = b
		}
	}
	return best, true
}

// Winner returns the winning bid of a closed auction. Open auctions and
// auctions without bids have no winner.
func Winner(closed bool, bids []models.Bid) (models.Bid, bool) {
	if !closed {
		return models.Bid{}, false
	}
	return HighestBid(bids)
}

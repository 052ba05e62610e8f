package resolver

import (
	"math"

	"auction-marketplace/internal/models"
)

// minimumIncrement is the smallest step a new bid must clear the current price by.
const minimumIncrement = 0.01

// CurrentPrice returns the highest of the starting price and every bid amount.
// With no bids the starting price stands.
func CurrentPrice(startingPrice float64, bids []models.Bid) float64 {
	price := startingPrice
	for _, b := range bids {
		if b.Amount > price {
			price = b.Amount
		}
	}
	return price
}

// MinimumBid returns the lowest amount a new bid can offer against current,
// rounded to whole cents.
func MinimumBid(current float64) float64 {
	return math.Round((current+minimumIncrement)*100) / 100
}

// Package demo fills an in-memory market with believable auctions so the
// gateway can run without a backend.
package demo

import (
	"fmt"
	"time"

	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/brianvoe/gofakeit/v7"
)

const stampLayout = "2006-01-02T15:04:05"

// Users are the fixed accounts of the demo market; log in as any of them
// with the X-Username header or username cookie.
var Users = []string{"alice", "bob", "carol", "dave"}

// Seed adds count generated auctions around now, roughly a third of them
// already closed, each with a few ascending bids from other users. The same
// seed always yields the same market.
func Seed(repo *repository.MemoryRepo, seed uint64, count int, now time.Time) error {
	faker := gofakeit.New(seed)
	now = now.UTC()

	for i := 0; i < count; i++ {
		seller := Users[faker.IntRange(0, len(Users)-1)]

		var ends time.Time
		if i%3 == 0 {
			ends = now.Add(-time.Duration(faker.IntRange(1, 72)) * time.Hour)
		} else {
			ends = now.Add(time.Duration(faker.IntRange(1, 168)) * time.Hour)
		}
		started := ends.Add(-time.Duration(faker.IntRange(24, 240)) * time.Hour)

		a := repo.AddAuction(model.Auction{
			Name:          faker.ProductName(),
			Categories:    model.Categories{faker.ProductCategory()},
			StartingPrice: float64(faker.IntRange(1, 200)),
			Location:      faker.City(),
			Country:       faker.Country(),
			Description:   faker.ProductDescription(),
			SellerUserID:  seller,
			Started:       started.Format(stampLayout),
			Ends:          ends.Format(stampLayout),
		})

		price := a.StartingPrice
		at := started
		for n := faker.IntRange(0, 5); n > 0; n-- {
			bidder := Users[faker.IntRange(0, len(Users)-1)]
			if bidder == seller {
				continue
			}
			price += float64(faker.IntRange(1, 25))
			at = at.Add(time.Duration(faker.IntRange(10, 600)) * time.Minute)
			if at.After(ends) {
				break
			}
			if err := repo.AddBid(model.Bid{
				AuctionID:      a.ID,
				BidderUsername: bidder,
				Amount:         price,
				Timestamp:      at.Format(stampLayout),
			}); err != nil {
				return fmt.Errorf("demo: seed bids for auction %d: %w", a.ID, err)
			}
		}
	}

	utils.Info("demo: market seeded", map[string]any{
		"auctions": count,
		"seed":     seed,
		"users":    Users,
	})
	return nil
}

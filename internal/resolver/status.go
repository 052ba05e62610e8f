package resolver

import (
	"strings"
	"time"

	"auction-marketplace/internal/models"
)

// Resolve derives the full status of one auction snapshot as seen by v at now.
// When v.Recipient is empty the counterparty is the other side of the
// winner/seller channel.
func Resolve(a models.Auction, bids []models.Bid, now time.Time, v models.Viewer) models.AuctionStatus {
	status := models.AuctionStatus{
		CurrentPrice: CurrentPrice(a.StartingPrice, bids),
		IsClosed:     IsClosed(a.Ends, now),
	}

	if win, ok := Winner(status.IsClosed, bids); ok {
		status.Winner = &models.WinningBid{
			BidderUsername: win.BidderUsername,
			Amount:         win.Amount,
		}
	}

	winner := status.WinnerUsername()
	status.Counterparty = v.Recipient
	if status.Counterparty == "" {
		status.Counterparty = Counterparty(winner, a.SellerUserID, v.Username)
	}
	status.CanMessage = CanMessage(status.IsClosed, winner, a.SellerUserID, v.Username, status.Counterparty)

	return status
}

// CanBid reports whether username may bid on a right now: a logged in user,
// an open auction, and not the seller's own listing.
func CanBid(a models.Auction, now time.Time, username string) bool {
	return username != "" && !IsClosed(a.Ends, now) && username != a.SellerUserID
}

// HasStarted reports whether an auction starting at started has begun by now.
// No start time means not started; an unreadable one counts as started.
func HasStarted(started string, now time.Time) bool {
	if strings.TrimSpace(started) == "" {
		return false
	}
	start, ok := ParseTimestamp(started)
	if !ok {
		return true
	}
	return !now.Before(start)
}

// CanDelete reports whether username may withdraw a: only its seller, and
// only before it starts.
func CanDelete(a models.Auction, now time.Time, username string) bool {
	return username != "" && username == a.SellerUserID && !HasStarted(a.Started, now)
}

// Matches reports whether query appears in the auction name or any of its
// categories, ignoring case. An empty query matches everything.
func Matches(a models.Auction, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Name), q) {
		return true
	}
	return strings.Contains(strings.ToLower(a.Categories.String()), q)
}

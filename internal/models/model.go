package models

import (
	"encoding/json"
	"strings"
)

// Viewer identifies who is looking at a view. An empty Username is a guest.
type Viewer struct {
	Username  string
	Recipient string // counterparty the viewer wants to message, optional
	Token     string // bearer token forwarded to the upstream backend
}

// LoggedIn reports whether the viewer has an identity
func (v Viewer) LoggedIn() bool {
	return v.Username != ""
}

// Auction represents a listed item as served by the upstream backend
type Auction struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Categories    Categories `json:"categories"`
	StartingPrice float64    `json:"startingPrice"`
	Location      string     `json:"location"`
	Country       string     `json:"country"`
	Description   string     `json:"description"`
	SellerUserID  string     `json:"sellerUserId"`
	Started       string     `json:"started"`
	Ends          string     `json:"ends"`
}

// Bid represents a user's offer on an auction
type Bid struct {
	ID             int64   `json:"id"`
	AuctionID      int64   `json:"auctionId,omitempty"`
	BidderUsername string  `json:"bidderUsername"`
	Amount         float64 `json:"amount"`
	Timestamp      string  `json:"timestamp"`
}

// Message is one entry of a post-auction conversation
type Message struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	AuctionID int64  `json:"auctionId"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// WinningBid is the bidder and amount that won a closed auction
type WinningBid struct {
	BidderUsername string  `json:"bidder_username"`
	Amount         float64 `json:"amount"`
}

// AuctionStatus holds the facts derived from one auction snapshot.
// It is recomputed on every view and never stored.
type AuctionStatus struct {
	CurrentPrice float64     `json:"current_price"`
	IsClosed     bool        `json:"is_closed"`
	Winner       *WinningBid `json:"winner,omitempty"`
	Counterparty string      `json:"counterparty,omitempty"`
	CanMessage   bool        `json:"can_message"`
}

// WinnerUsername returns the winner's username or "" when there is none
func (s AuctionStatus) WinnerUsername() string {
	if s.Winner == nil {
		return ""
	}
	return s.Winner.BidderUsername
}

// Categories accepts either a JSON array of strings or a single
// comma separated string, both of which the backend has been seen to send.
type Categories []string

func (c *Categories) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*c = list
		return nil
	}

	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*c = nil
		return nil
	}

	parts := strings.Split(*raw, ",")
	out := make(Categories, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*c = out
	return nil
}

// String joins the categories the way listings display them
func (c Categories) String() string {
	return strings.Join(c, ", ")
}

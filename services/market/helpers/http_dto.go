package helpers

import (
	"strings"

	model "auction-marketplace/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateAuctionRequest struct {
	Name          string   `json:"name" binding:"required"`
	Categories    []string `json:"categories"`
	StartingPrice float64  `json:"starting_price" binding:"gte=0"`
	Location      string   `json:"location"`
	Country       string   `json:"country"`
	Description   string   `json:"description"`
	Started       string   `json:"started"`
	Ends          string   `json:"ends" binding:"required"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// ToAuction converts the request into the upstream shape; the seller is set by the service
func (r CreateAuctionRequest) ToAuction() model.Auction {
	cats := make(model.Categories, 0, len(r.Categories))
	for _, c := range r.Categories {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	return model.Auction{
		Name:          r.Name,
		Categories:    cats,
		StartingPrice: r.StartingPrice,
		Location:      r.Location,
		Country:       r.Country,
		Description:   r.Description,
		Started:       r.Started,
		Ends:          r.Ends,
	}
}

type AuctionResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Categories    []string `json:"categories"`
	StartingPrice float64  `json:"starting_price"`
	Location      string   `json:"location"`
	Country       string   `json:"country"`
	Description   string   `json:"description"`
	Seller        string   `json:"seller"`
	Started       string   `json:"started"`
	Ends          string   `json:"ends"`
}

type AuctionSummaryResponse struct {
	AuctionResponse
	CurrentPrice float64 `json:"current_price"`
	IsClosed     bool    `json:"is_closed"`
}

type BidResponse struct {
	BidID     int64   `json:"bid_id"`
	AuctionID int64   `json:"auction_id"`
	Bidder    string  `json:"bidder"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionViewResponse struct {
	Auction    AuctionResponse     `json:"auction"`
	Bids       []BidResponse       `json:"bids"`
	Status     model.AuctionStatus `json:"status"`
	CanBid     bool                `json:"can_bid"`
	CanDelete  bool                `json:"can_delete"`
	MinimumBid float64             `json:"minimum_bid"`
}

type MessageResponse struct {
	MessageID int64  `json:"message_id"`
	AuctionID int64  `json:"auction_id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	SentAt    string `json:"sent_at"`
	Read      bool   `json:"read"`
}

type ThreadResponse struct {
	AuctionID int64             `json:"auction_id"`
	With      string            `json:"with"`
	Messages  []MessageResponse `json:"messages"`
	CanSend   bool              `json:"can_send"`
}

type MarkReadResponse struct {
	Marked int `json:"marked"`
}

func NewAuctionResponse(a model.Auction) AuctionResponse {
	cats := []string(a.Categories)
	if cats == nil {
		cats = []string{}
	}
	return AuctionResponse{
		ID:            a.ID,
		Name:          a.Name,
		Categories:    cats,
		StartingPrice: a.StartingPrice,
		Location:      a.Location,
		Country:       a.Country,
		Description:   a.Description,
		Seller:        a.SellerUserID,
		Started:       a.Started,
		Ends:          a.Ends,
	}
}

func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.ID,
		AuctionID: b.AuctionID,
		Bidder:    b.BidderUsername,
		Amount:    b.Amount,
		CreatedAt: b.Timestamp,
	}
}

func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

func NewMessageResponse(m model.Message) MessageResponse {
	return MessageResponse{
		MessageID: m.ID,
		AuctionID: m.AuctionID,
		Sender:    m.Sender,
		Recipient: m.Recipient,
		Content:   m.Content,
		SentAt:    m.Timestamp,
		Read:      m.Read,
	}
}

func NewMessageResponses(msgs []model.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, NewMessageResponse(m))
	}
	return out
}

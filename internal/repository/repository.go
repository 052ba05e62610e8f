package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/resolver"
)

// AuctionSource is the upstream auction backend as seen by the gateway
type AuctionSource interface {
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	ListAuctionsBySeller(ctx context.Context, seller string) ([]model.Auction, error)
	GetAuction(ctx context.Context, auctionID int64) (model.Auction, error)
	CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error)
	DeleteAuction(ctx context.Context, auctionID int64) error
	GetBids(ctx context.Context, auctionID int64) ([]model.Bid, error)
	PlaceBid(ctx context.Context, auctionID int64, bidder string, amount float64) (model.Bid, error)
	GetInbox(ctx context.Context, username string) ([]model.Message, error)
	GetSent(ctx context.Context, username string) ([]model.Message, error)
	GetThread(ctx context.Context, auctionID int64, username, other string) ([]model.Message, error)
	SendMessage(ctx context.Context, msg model.Message) (model.Message, error)
	MarkRead(ctx context.Context, messageID int64, username string) error
}

// naiveLayout is how the backend stamps its records: UTC without an offset
const naiveLayout = "2006-01-02T15:04:05"

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionSource.
// It stands in for the upstream backend in demo mode and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[int64]model.Auction
	bids     map[int64][]model.Bid // key: auctionID -> value: bids in arrival order
	messages []model.Message
	nextID   int64
	now      func() time.Time
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[int64]model.Auction),
		bids:     make(map[int64][]model.Bid),
		now:      time.Now,
	}
}

// SetClock replaces the clock used to stamp bids and messages
func (r *MemoryRepo) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func (r *MemoryRepo) id() int64 {
	r.nextID++
	return r.nextID
}

func (r *MemoryRepo) stamp() string {
	return r.now().UTC().Format(naiveLayout)
}

// AddAuction stores an auction as is, assigning an ID when it has none
func (r *MemoryRepo) AddAuction(a model.Auction) model.Auction {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == 0 {
		a.ID = r.id()
	} else if a.ID > r.nextID {
		r.nextID = a.ID
	}
	r.auctions[a.ID] = a
	return a
}

// AddBid appends a bid without any validation. This method is intended for seeding.
func (r *MemoryRepo) AddBid(b model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[b.AuctionID]; !ok {
		return fmt.Errorf("add bid for auction %d: %w", b.AuctionID, marketerrors.ErrAuctionNotFound)
	}
	if b.ID == 0 {
		b.ID = r.id()
	}
	if b.Timestamp == "" {
		b.Timestamp = r.stamp()
	}
	r.bids[b.AuctionID] = append(r.bids[b.AuctionID], b)
	return nil
}

// ListAuctions returns every auction ordered by ID
func (r *MemoryRepo) ListAuctions(_ context.Context) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListAuctionsBySeller returns the auctions listed by seller
func (r *MemoryRepo) ListAuctionsBySeller(ctx context.Context, seller string) ([]model.Auction, error) {
	all, _ := r.ListAuctions(ctx)
	out := make([]model.Auction, 0, len(all))
	for _, a := range all {
		if a.SellerUserID == seller {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetAuction returns one auction
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID int64) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// CreateAuction stores a new auction under a fresh ID
func (r *MemoryRepo) CreateAuction(_ context.Context, a model.Auction) (model.Auction, error) {
	a.ID = 0
	return r.AddAuction(a), nil
}

// DeleteAuction removes an auction and its bids. Like the backend it refuses
// auctions that have started.
func (r *MemoryRepo) DeleteAuction(_ context.Context, auctionID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("delete auction %d: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	if resolver.HasStarted(a.Started, r.now()) {
		return fmt.Errorf("delete auction %d: %w - auction has started", auctionID, marketerrors.ErrRejected)
	}
	delete(r.auctions, auctionID)
	delete(r.bids, auctionID)
	return nil
}

// GetBids returns all bids for an auction
func (r *MemoryRepo) GetBids(_ context.Context, auctionID int64) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %d: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return append([]model.Bid{}, r.bids[auctionID]...), nil
}

// PlaceBid records a bid the way the backend does: the auction must be open
// and the amount must beat the current price.
func (r *MemoryRepo) PlaceBid(_ context.Context, auctionID int64, bidder string, amount float64) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	if resolver.IsClosed(a.Ends, r.now()) {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w - auction has finished", auctionID, marketerrors.ErrRejected)
	}
	if current := resolver.CurrentPrice(a.StartingPrice, r.bids[auctionID]); amount <= current {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w - bid must be higher than %.2f", auctionID, marketerrors.ErrRejected, current)
	}

	bid := model.Bid{
		ID:             r.id(),
		AuctionID:      auctionID,
		BidderUsername: bidder,
		Amount:         amount,
		Timestamp:      r.stamp(),
	}
	r.bids[auctionID] = append(r.bids[auctionID], bid)
	return bid, nil
}

// GetInbox returns the messages addressed to username
func (r *MemoryRepo) GetInbox(_ context.Context, username string) ([]model.Message, error) {
	return r.filterMessages(func(m model.Message) bool { return m.Recipient == username }), nil
}

// GetSent returns the messages sent by username
func (r *MemoryRepo) GetSent(_ context.Context, username string) ([]model.Message, error) {
	return r.filterMessages(func(m model.Message) bool { return m.Sender == username }), nil
}

// GetThread returns the conversation between username and other about one auction
func (r *MemoryRepo) GetThread(_ context.Context, auctionID int64, username, other string) ([]model.Message, error) {
	return r.filterMessages(func(m model.Message) bool {
		if m.AuctionID != auctionID {
			return false
		}
		return (m.Sender == username && m.Recipient == other) || (m.Sender == other && m.Recipient == username)
	}), nil
}

// SendMessage stores a message, enforcing the winner/seller channel the same
// way the backend does
func (r *MemoryRepo) SendMessage(_ context.Context, msg model.Message) (model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[msg.AuctionID]
	if !ok {
		return model.Message{}, fmt.Errorf("send message for auction %d: %w", msg.AuctionID, marketerrors.ErrRejected)
	}

	closed := resolver.IsClosed(a.Ends, r.now())
	win, _ := resolver.Winner(closed, r.bids[a.ID])
	if !resolver.CanMessage(closed, win.BidderUsername, a.SellerUserID, msg.Sender, msg.Recipient) {
		return model.Message{}, fmt.Errorf("send message for auction %d: %w", msg.AuctionID, marketerrors.ErrUnauthorized)
	}

	msg.ID = r.id()
	msg.Timestamp = r.stamp()
	msg.Read = false
	r.messages = append(r.messages, msg)
	return msg, nil
}

// MarkRead flags a message as read when username is its recipient
func (r *MemoryRepo) MarkRead(_ context.Context, messageID int64, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID != messageID {
			continue
		}
		if r.messages[i].Recipient != username {
			return fmt.Errorf("mark message %d read: %w", messageID, marketerrors.ErrUnauthorized)
		}
		r.messages[i].Read = true
		return nil
	}
	return fmt.Errorf("mark message %d read: %w", messageID, marketerrors.ErrRejected)
}

func (r *MemoryRepo) filterMessages(keep func(model.Message) bool) []model.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.Message{}
	for _, m := range r.messages {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

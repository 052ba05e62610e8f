package market

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/resolver"
	"auction-marketplace/utils"
)

// AuctionSummary is one row of the auction listing
type AuctionSummary struct {
	Auction      models.Auction
	CurrentPrice float64
	IsClosed     bool
}

// AuctionView is everything the auction detail screen shows
type AuctionView struct {
	Auction    models.Auction
	Bids       []models.Bid
	Status     models.AuctionStatus
	CanBid     bool
	CanDelete  bool
	MinimumBid float64
}

// Thread is a conversation about one auction plus whether the viewer may reply
type Thread struct {
	AuctionID int64
	With      string
	Messages  []models.Message
	CanSend   bool
}

// MarketService defines the gateway logic on top of the upstream backend.
// Derived auction facts always come from the resolver applied to the
// snapshot fetched for the current call.
type MarketService struct {
	source repository.AuctionSource
	now    func() time.Time
}

// NewMarketService creates a new MarketService instance
func NewMarketService(source repository.AuctionSource) *MarketService {
	return &MarketService{
		source: source,
		now:    time.Now,
	}
}

// WithClock replaces the service clock, mostly for tests
func (s *MarketService) WithClock(now func() time.Time) *MarketService {
	s.now = now
	return s
}

// ListAuctions returns every auction matching query with its current price.
// A failed bid fetch degrades that auction to its starting price.
func (s *MarketService) ListAuctions(ctx context.Context, query string) ([]AuctionSummary, error) {
	auctions, err := s.source.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	filtered := make([]models.Auction, 0, len(auctions))
	for _, a := range auctions {
		if resolver.Matches(a, query) {
			filtered = append(filtered, a)
		}
	}
	return s.summarize(ctx, filtered), nil
}

// ListMyAuctions returns the viewer's own listings
func (s *MarketService) ListMyAuctions(ctx context.Context, viewer models.Viewer) ([]AuctionSummary, error) {
	if !viewer.LoggedIn() {
		return nil, fmt.Errorf("service: %w - listing own auctions", marketerrors.ErrNotLoggedIn)
	}

	auctions, err := s.source.ListAuctionsBySeller(ctx, viewer.Username)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions of %s: %w", viewer.Username, err)
	}
	return s.summarize(ctx, auctions), nil
}

func (s *MarketService) summarize(ctx context.Context, auctions []models.Auction) []AuctionSummary {
	now := s.now()
	out := make([]AuctionSummary, 0, len(auctions))
	for _, a := range auctions {
		bids, err := s.source.GetBids(ctx, a.ID)
		if err != nil {
			utils.Warn("service: bids unavailable, showing starting price", map[string]any{
				"auction_id": a.ID,
				"error":      err.Error(),
			})
			bids = nil
		}
		out = append(out, AuctionSummary{
			Auction:      a,
			CurrentPrice: resolver.CurrentPrice(a.StartingPrice, bids),
			IsClosed:     resolver.IsClosed(a.Ends, now),
		})
	}
	return out
}

// GetAuctionView loads one auction with its bids and derives its status for viewer
func (s *MarketService) GetAuctionView(ctx context.Context, auctionID int64, viewer models.Viewer) (AuctionView, error) {
	if auctionID <= 0 {
		return AuctionView{}, fmt.Errorf("service: %w - invalid auction id %d", marketerrors.ErrAuctionNotFound, auctionID)
	}

	a, err := s.source.GetAuction(ctx, auctionID)
	if err != nil {
		return AuctionView{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	bids, err := s.source.GetBids(ctx, auctionID)
	if err != nil {
		utils.Warn("service: bids unavailable, showing none", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		bids = []models.Bid{}
	}

	now := s.now()
	status := resolver.Resolve(a, bids, now, viewer)
	s.logEndParse(a, now, status.IsClosed)

	return AuctionView{
		Auction:    a,
		Bids:       bids,
		Status:     status,
		CanBid:     resolver.CanBid(a, now, viewer.Username),
		CanDelete:  resolver.CanDelete(a, now, viewer.Username),
		MinimumBid: resolver.MinimumBid(status.CurrentPrice),
	}, nil
}

// GetBids returns the bids of one auction
func (s *MarketService) GetBids(ctx context.Context, auctionID int64) ([]models.Bid, error) {
	bids, err := s.source.GetBids(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %d: %w", auctionID, err)
	}
	return bids, nil
}

// CreateAuction validates and lists a new auction for viewer
func (s *MarketService) CreateAuction(ctx context.Context, viewer models.Viewer, a models.Auction) (models.Auction, error) {
	if !viewer.LoggedIn() {
		return models.Auction{}, fmt.Errorf("service: %w - creating an auction", marketerrors.ErrNotLoggedIn)
	}
	if err := validateAuction(a); err != nil {
		return models.Auction{}, err
	}

	a.SellerUserID = viewer.Username
	created, err := s.source.CreateAuction(ctx, a)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %q: %w", a.Name, err)
	}
	return created, nil
}

func validateAuction(a models.Auction) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("service: %w - missing name", marketerrors.ErrInvalidAuction)
	}
	if a.StartingPrice < 0 {
		return fmt.Errorf("service: %w - negative starting price", marketerrors.ErrInvalidAuction)
	}

	ends, ok := resolver.ParseTimestamp(a.Ends)
	if !ok {
		return fmt.Errorf("service: %w - unreadable end time %q", marketerrors.ErrInvalidAuction, a.Ends)
	}
	if a.Started != "" {
		started, ok := resolver.ParseTimestamp(a.Started)
		if !ok {
			return fmt.Errorf("service: %w - unreadable start time %q", marketerrors.ErrInvalidAuction, a.Started)
		}
		if !started.Before(ends) {
			return fmt.Errorf("service: %w - start must precede end", marketerrors.ErrInvalidAuction)
		}
	}
	return nil
}

// DeleteAuction withdraws one of the viewer's auctions before it starts
func (s *MarketService) DeleteAuction(ctx context.Context, auctionID int64, viewer models.Viewer) error {
	if !viewer.LoggedIn() {
		return fmt.Errorf("service: %w - deleting an auction", marketerrors.ErrNotLoggedIn)
	}
	if auctionID <= 0 {
		return fmt.Errorf("service: %w - invalid auction id %d", marketerrors.ErrAuctionNotFound, auctionID)
	}

	a, err := s.source.GetAuction(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	if a.SellerUserID != viewer.Username {
		return fmt.Errorf("service: %w - auction %d", marketerrors.ErrNotSeller, auctionID)
	}
	if resolver.HasStarted(a.Started, s.now()) {
		return fmt.Errorf("service: %w - auction %d started at %q", marketerrors.ErrAuctionStarted, auctionID, a.Started)
	}

	if err := s.source.DeleteAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %d: %w", auctionID, err)
	}
	return nil
}

// PlaceBid checks a bid against the latest snapshot and forwards it upstream.
// The checks are advisory; the backend enforces them again.
func (s *MarketService) PlaceBid(ctx context.Context, auctionID int64, viewer models.Viewer, amount float64) (models.Bid, error) {
	if !viewer.LoggedIn() {
		return models.Bid{}, fmt.Errorf("service: %w - bidding", marketerrors.ErrNotLoggedIn)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}

	view, err := s.GetAuctionView(ctx, auctionID, viewer)
	if err != nil {
		return models.Bid{}, err
	}
	if view.Status.IsClosed {
		return models.Bid{}, fmt.Errorf("service: %w - bidding is closed for auction %d", marketerrors.ErrAuctionClosed, auctionID)
	}
	if view.Auction.SellerUserID == viewer.Username {
		return models.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrOwnAuction)
	}
	if amount <= view.Status.CurrentPrice {
		return models.Bid{}, fmt.Errorf("service: %w - current price is %.2f", marketerrors.ErrBidTooLow, view.Status.CurrentPrice)
	}

	bid, err := s.source.PlaceBid(ctx, auctionID, viewer.Username, amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on auction %d by %s: %w", auctionID, viewer.Username, err)
	}
	return bid, nil
}

// GetInbox returns messages addressed to viewer, newest first
func (s *MarketService) GetInbox(ctx context.Context, viewer models.Viewer) ([]models.Message, error) {
	if !viewer.LoggedIn() {
		return nil, fmt.Errorf("service: %w - reading inbox", marketerrors.ErrNotLoggedIn)
	}
	msgs, err := s.source.GetInbox(ctx, viewer.Username)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get inbox of %s: %w", viewer.Username, err)
	}
	return newestFirst(msgs), nil
}

// GetSent returns messages sent by viewer, newest first
func (s *MarketService) GetSent(ctx context.Context, viewer models.Viewer) ([]models.Message, error) {
	if !viewer.LoggedIn() {
		return nil, fmt.Errorf("service: %w - reading sent messages", marketerrors.ErrNotLoggedIn)
	}
	msgs, err := s.source.GetSent(ctx, viewer.Username)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get sent messages of %s: %w", viewer.Username, err)
	}
	return newestFirst(msgs), nil
}

// GetThread returns the conversation between viewer and with about one
// auction, and whether the viewer may currently send in it
func (s *MarketService) GetThread(ctx context.Context, auctionID int64, viewer models.Viewer, with string) (Thread, error) {
	if !viewer.LoggedIn() {
		return Thread{}, fmt.Errorf("service: %w - reading a thread", marketerrors.ErrNotLoggedIn)
	}

	msgs, err := s.source.GetThread(ctx, auctionID, viewer.Username, with)
	if err != nil {
		return Thread{}, fmt.Errorf("service: failed to get thread for auction %d: %w", auctionID, err)
	}

	return Thread{
		AuctionID: auctionID,
		With:      with,
		Messages:  msgs,
		CanSend:   s.canSend(ctx, auctionID, viewer, with),
	}, nil
}

// canSend resolves eligibility from a fresh snapshot; any failure to load the
// auction means no
func (s *MarketService) canSend(ctx context.Context, auctionID int64, viewer models.Viewer, recipient string) bool {
	v := viewer
	v.Recipient = recipient

	view, err := s.GetAuctionView(ctx, auctionID, v)
	if err != nil {
		utils.Warn("service: eligibility unknown, denying", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return false
	}
	return view.Status.CanMessage
}

// SendMessage sends content to recipient when the winner/seller channel is open
func (s *MarketService) SendMessage(ctx context.Context, auctionID int64, viewer models.Viewer, recipient, content string) (models.Message, error) {
	if !viewer.LoggedIn() {
		return models.Message{}, fmt.Errorf("service: %w - sending a message", marketerrors.ErrNotLoggedIn)
	}
	content = strings.TrimSpace(content)
	if content == "" || recipient == "" {
		return models.Message{}, fmt.Errorf("service: %w - missing recipient or content", marketerrors.ErrInvalidMessage)
	}
	if !s.canSend(ctx, auctionID, viewer, recipient) {
		return models.Message{}, fmt.Errorf("service: %w", marketerrors.ErrMessagingDenied)
	}

	msg, err := s.source.SendMessage(ctx, models.Message{
		Sender:    viewer.Username,
		Recipient: recipient,
		AuctionID: auctionID,
		Content:   content,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("service: failed to send message for auction %d: %w", auctionID, err)
	}
	return msg, nil
}

// MarkThreadRead marks every unread message from with to viewer as read and
// returns how many were marked
func (s *MarketService) MarkThreadRead(ctx context.Context, auctionID int64, viewer models.Viewer, with string) (int, error) {
	if !viewer.LoggedIn() {
		return 0, fmt.Errorf("service: %w - marking a thread read", marketerrors.ErrNotLoggedIn)
	}

	msgs, err := s.source.GetThread(ctx, auctionID, viewer.Username, with)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get thread for auction %d: %w", auctionID, err)
	}

	marked := 0
	for _, m := range msgs {
		if m.Read || m.Recipient != viewer.Username {
			continue
		}
		if err := s.source.MarkRead(ctx, m.ID, viewer.Username); err != nil {
			return marked, fmt.Errorf("service: failed to mark message %d read: %w", m.ID, err)
		}
		marked++
	}
	return marked, nil
}

// newestFirst orders messages by parsed timestamp, unknown timestamps last
func newestFirst(msgs []models.Message) []models.Message {
	out := append([]models.Message{}, msgs...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := resolver.ParseTimestamp(out[i].Timestamp)
		tj, okJ := resolver.ParseTimestamp(out[j].Timestamp)
		if okI != okJ {
			return okI
		}
		return ti.After(tj)
	})
	return out
}

func (s *MarketService) logEndParse(a models.Auction, now time.Time, closed bool) {
	end, ok := resolver.ParseTimestamp(a.Ends)
	fields := map[string]any{
		"auction_id": a.ID,
		"ends":       a.Ends,
		"now":        now.UTC().Format(time.RFC3339),
		"is_closed":  closed,
	}
	if ok {
		fields["parsed"] = end.Format(time.RFC3339Nano)
	}
	utils.Debug("service: resolved auction end", fields)
}

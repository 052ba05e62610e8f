package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// Helper to create a new Auction
func newAuction(id int64, name, seller string, startingPrice float64, ends string) model.Auction {
	return model.Auction{
		ID:            id,
		Name:          name,
		Categories:    model.Categories{"General"},
		StartingPrice: startingPrice,
		Description:   fmt.Sprintf("%s description", name),
		SellerUserID:  seller,
		Started:       "2024-05-01T00:00:00",
		Ends:          ends,
	}
}

// Helper to create a repo with a pinned clock
func newTestRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	repo.SetClock(func() time.Time { return fixedNow })
	return repo
}

// Test PlaceBid
func TestMemoryRepo_PlaceBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepo()
	repo.AddAuction(newAuction(1, "Open", "seller", 50, "2024-07-01T00:00:00"))
	repo.AddAuction(newAuction(2, "Closed", "seller", 50, "2024-05-31T00:00:00"))

	tests := []struct {
		name    string
		auction int64
		amount  float64
		wantErr error
	}{
		{name: "valid_bid", auction: 1, amount: 100},
		{name: "auction_not_found", auction: 99, amount: 100, wantErr: marketerrors.ErrAuctionNotFound},
		{name: "closed_auction", auction: 2, amount: 100, wantErr: marketerrors.ErrRejected},
		{name: "not_above_starting_price", auction: 2, amount: 50, wantErr: marketerrors.ErrRejected},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bid, err := repo.PlaceBid(ctx, tc.auction, "bidder", tc.amount)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "expected error: %v, got: %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, bid.ID)
			require.Equal(t, "2024-06-01T12:00:00", bid.Timestamp)

			bids, err := repo.GetBids(ctx, tc.auction)
			require.NoError(t, err)
			require.Contains(t, bids, bid)
		})
	}

	t.Run("must_beat_current_price", func(t *testing.T) {
		repo := newTestRepo()
		repo.AddAuction(newAuction(1, "Open", "seller", 10, "2024-07-01T00:00:00"))

		_, err := repo.PlaceBid(ctx, 1, "a", 20)
		require.NoError(t, err)
		_, err = repo.PlaceBid(ctx, 1, "b", 20)
		require.ErrorIs(t, err, marketerrors.ErrRejected)
		_, err = repo.PlaceBid(ctx, 1, "b", 20.5)
		require.NoError(t, err)
	})

	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo()
		repo.AddAuction(newAuction(1, "Shared", "seller", 0, "2024-07-01T00:00:00"))

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				_, _ = repo.PlaceBid(ctx, 1, fmt.Sprintf("user-%d", i), float64(100+i))
			}()
		}
		wg.Wait()

		bids, err := repo.GetBids(ctx, 1)
		require.NoError(t, err)
		require.NotEmpty(t, bids)
		for i := 1; i < len(bids); i++ {
			require.Greater(t, bids[i].Amount, bids[i-1].Amount)
		}
	})
}

// Test GetBids
func TestMemoryRepo_GetBids(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepo()
	repo.AddAuction(newAuction(1, "With bids", "seller", 10, "2024-07-01T00:00:00"))
	repo.AddAuction(newAuction(2, "No bids", "seller", 10, "2024-07-01T00:00:00"))
	require.NoError(t, repo.AddBid(model.Bid{AuctionID: 1, BidderUsername: "a", Amount: 20}))
	require.NoError(t, repo.AddBid(model.Bid{AuctionID: 1, BidderUsername: "b", Amount: 15}))
	require.ErrorIs(t, repo.AddBid(model.Bid{AuctionID: 3, BidderUsername: "c", Amount: 15}), marketerrors.ErrAuctionNotFound)

	tests := []struct {
		name      string
		auctionID int64
		wantCount int
		wantError bool
	}{
		{name: "existing_auction_with_bids", auctionID: 1, wantCount: 2},
		{name: "existing_auction_no_bids", auctionID: 2, wantCount: 0},
		{name: "non_existing_auction", auctionID: 3, wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bids, err := repo.GetBids(ctx, tc.auctionID)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, bids)
			require.Len(t, bids, tc.wantCount)
		})
	}

	t.Run("returns_copy", func(t *testing.T) {
		t.Parallel()

		bids, err := repo.GetBids(ctx, 1)
		require.NoError(t, err)
		bids[0].Amount = 1e9

		again, err := repo.GetBids(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 20.0, again[0].Amount)
	})

	t.Run("concurrent_reads", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bids, err := repo.GetBids(ctx, 1)
				require.NoError(t, err)
				require.Len(t, bids, 2)
			}()
		}
		wg.Wait()
	})
}

// Test auction listing
func TestMemoryRepo_Auctions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepo()
	repo.AddAuction(newAuction(3, "Third", "alice", 10, ""))
	repo.AddAuction(newAuction(1, "First", "bob", 10, ""))
	created, err := repo.CreateAuction(ctx, newAuction(42, "Created", "alice", 5, ""))
	require.NoError(t, err)
	require.Equal(t, int64(4), created.ID)

	all, err := repo.ListAuctions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []int64{1, 3, 4}, []int64{all[0].ID, all[1].ID, all[2].ID})

	mine, err := repo.ListAuctionsBySeller(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	_, err = repo.GetAuction(ctx, 2)
	require.ErrorIs(t, err, marketerrors.ErrAuctionNotFound)

	got, err := repo.GetAuction(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "First", got.Name)
}

// Test messaging
func TestMemoryRepo_Messages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepo()
	repo.AddAuction(newAuction(1, "Closed", "seller", 10, "2024-05-31T00:00:00"))
	repo.AddAuction(newAuction(2, "Open", "seller", 10, "2024-07-01T00:00:00"))
	require.NoError(t, repo.AddBid(model.Bid{AuctionID: 1, BidderUsername: "loser", Amount: 20}))
	require.NoError(t, repo.AddBid(model.Bid{AuctionID: 1, BidderUsername: "winner", Amount: 30}))
	require.NoError(t, repo.AddBid(model.Bid{AuctionID: 2, BidderUsername: "winner", Amount: 30}))

	tests := []struct {
		name    string
		msg     model.Message
		wantErr error
	}{
		{name: "winner_to_seller", msg: model.Message{AuctionID: 1, Sender: "winner", Recipient: "seller", Content: "hi"}},
		{name: "seller_to_winner", msg: model.Message{AuctionID: 1, Sender: "seller", Recipient: "winner", Content: "hello"}},
		{name: "loser_to_seller", msg: model.Message{AuctionID: 1, Sender: "loser", Recipient: "seller", Content: "me?"}, wantErr: marketerrors.ErrUnauthorized},
		{name: "open_auction", msg: model.Message{AuctionID: 2, Sender: "winner", Recipient: "seller", Content: "early"}, wantErr: marketerrors.ErrUnauthorized},
		{name: "unknown_auction", msg: model.Message{AuctionID: 9, Sender: "winner", Recipient: "seller", Content: "?"}, wantErr: marketerrors.ErrRejected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := repo.SendMessage(ctx, tc.msg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, msg.ID)
			require.False(t, msg.Read)
		})
	}

	thread, err := repo.GetThread(ctx, 1, "winner", "seller")
	require.NoError(t, err)
	require.Len(t, thread, 2)

	inbox, err := repo.GetInbox(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, inbox, 1)

	sent, err := repo.GetSent(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, sent, 1)

	require.ErrorIs(t, repo.MarkRead(ctx, inbox[0].ID, "winner"), marketerrors.ErrUnauthorized)
	require.NoError(t, repo.MarkRead(ctx, inbox[0].ID, "seller"))
	require.ErrorIs(t, repo.MarkRead(ctx, 999, "seller"), marketerrors.ErrRejected)

	inbox, err = repo.GetInbox(ctx, "seller")
	require.NoError(t, err)
	require.True(t, inbox[0].Read)
}

// Test DeleteAuction
func TestMemoryRepo_DeleteAuction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepo()
	upcoming := newAuction(1, "Upcoming", "seller", 10, "2024-07-01T00:00:00")
	upcoming.Started = "2024-06-10T00:00:00"
	repo.AddAuction(upcoming)
	repo.AddAuction(newAuction(2, "Running", "seller", 10, "2024-07-01T00:00:00"))

	require.ErrorIs(t, repo.DeleteAuction(ctx, 2), marketerrors.ErrRejected)
	require.ErrorIs(t, repo.DeleteAuction(ctx, 99), marketerrors.ErrAuctionNotFound)

	require.NoError(t, repo.DeleteAuction(ctx, 1))
	_, err := repo.GetAuction(ctx, 1)
	require.ErrorIs(t, err, marketerrors.ErrAuctionNotFound)

	_, err = repo.GetAuction(ctx, 2)
	require.NoError(t, err)
}

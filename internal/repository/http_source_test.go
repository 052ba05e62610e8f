package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

// upstreamStub serves canned responses keyed by "METHOD path" and records requests
type upstreamStub struct {
	routes map[string]func(w http.ResponseWriter, r *http.Request)
}

func (u *upstreamStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, ok := u.routes[r.Method+" "+r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newStubSource(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) *HTTPSource {
	t.Helper()
	srv := httptest.NewServer(&upstreamStub{routes: routes})
	t.Cleanup(srv.Close)
	return NewHTTPSource(srv.URL+"/", 2*time.Second)
}

func TestHTTPSource_GetAuctionAndBids(t *testing.T) {
	t.Parallel()

	src := newStubSource(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/auctions/7": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"id":7,"name":"Lamp","categories":"Home, Lighting","startingPrice":12.5,"sellerUserId":"s","started":"2024-01-01T00:00:00","ends":"2024-02-01T00:00:00"}`)
		},
		"GET /api/auctions/7/bids": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"id":1,"bidderUsername":"a","amount":13,"timestamp":"2024-01-02T10:00:00.123"},{"id":2,"bidderUsername":"b","amount":20,"timestamp":"2024-01-03T10:00:00"}]`)
		},
	})

	ctx := context.Background()
	a, err := src.GetAuction(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), a.ID)
	require.Equal(t, model.Categories{"Home", "Lighting"}, a.Categories)
	require.Equal(t, 12.5, a.StartingPrice)
	require.Equal(t, "2024-02-01T00:00:00", a.Ends)

	bids, err := src.GetBids(ctx, 7)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, int64(7), bids[0].AuctionID)
	require.Equal(t, "b", bids[1].BidderUsername)
	require.Equal(t, 20.0, bids[1].Amount)
}

func TestHTTPSource_ForwardsTokenAndBodies(t *testing.T) {
	t.Parallel()

	var gotAuth, gotBid, gotMessage string
	src := newStubSource(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /api/auctions/3/bids": func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			body, _ := io.ReadAll(r.Body)
			gotBid = string(body)
			writeJSON(w, http.StatusOK, map[string]any{"id": 11, "bidderUsername": "me", "amount": 42.5, "timestamp": "2024-01-01T00:00:00"})
		},
		"POST /api/messages": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotMessage = string(body)
			writeJSON(w, http.StatusOK, map[string]any{"id": 5, "sender": "me", "recipient": "s", "auctionId": 3, "content": "hi"})
		},
		"POST /api/messages/5/read": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	ctx := WithToken(context.Background(), "secret")

	bid, err := src.PlaceBid(ctx, 3, "ignored", 42.5)
	require.NoError(t, err)
	require.Equal(t, "Bearer secret", gotAuth)
	require.JSONEq(t, `{"amount":42.5}`, gotBid)
	require.Equal(t, int64(3), bid.AuctionID)
	require.Equal(t, int64(11), bid.ID)

	msg, err := src.SendMessage(ctx, model.Message{AuctionID: 3, Recipient: "s", Content: "hi", Sender: "me"})
	require.NoError(t, err)
	require.JSONEq(t, `{"recipient":"s","auctionId":3,"content":"hi"}`, gotMessage)
	require.Equal(t, int64(5), msg.ID)

	require.NoError(t, src.MarkRead(ctx, 5, "me"))
}

func TestHTTPSource_ThreadQuery(t *testing.T) {
	t.Parallel()

	var gotQuery string
	src := newStubSource(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/messages/thread": func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			writeJSON(w, http.StatusOK, []model.Message{{ID: 1, Sender: "s", Recipient: "me", AuctionID: 3}})
		},
	})

	msgs, err := src.GetThread(context.Background(), 3, "me", "s")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "auctionId=3&user=s", gotQuery)
}

func TestHTTPSource_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not_found", status: http.StatusNotFound, wantErr: marketerrors.ErrAuctionNotFound},
		{name: "bad_request", status: http.StatusBadRequest, body: "Bid must be higher than current price", wantErr: marketerrors.ErrRejected},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: marketerrors.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: "Only the winner and seller can message each other", wantErr: marketerrors.ErrUnauthorized},
		{name: "server_error", status: http.StatusInternalServerError, wantErr: marketerrors.ErrUpstream},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := newStubSource(t, map[string]func(http.ResponseWriter, *http.Request){
				"GET /api/auctions": func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tc.status)
					_, _ = io.WriteString(w, tc.body)
				},
			})

			_, err := src.ListAuctions(context.Background())
			require.ErrorIs(t, err, tc.wantErr)
			if tc.body != "" {
				require.Contains(t, err.Error(), tc.body)
			}
		})
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	src := NewHTTPSource(srv.URL, time.Second)
	srv.Close()

	_, err := src.GetInbox(context.Background(), "me")
	require.ErrorIs(t, err, marketerrors.ErrUpstream)
}

func TestHTTPSource_BadJSON(t *testing.T) {
	t.Parallel()

	src := newStubSource(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/messages/sent": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{not json`)
		},
	})

	_, err := src.GetSent(context.Background(), "me")
	require.ErrorIs(t, err, marketerrors.ErrUpstream)
}

func TestHTTPSource_DeleteAuction(t *testing.T) {
	t.Parallel()

	var gotAuth string
	src := newStubSource(t, map[string]func(http.ResponseWriter, *http.Request){
		"DELETE /api/auctions/5": func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		},
		"DELETE /api/auctions/6": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, "Cannot delete an auction that has already started")
		},
	})

	ctx := WithToken(context.Background(), "secret")

	require.NoError(t, src.DeleteAuction(ctx, 5))
	require.Equal(t, "Bearer secret", gotAuth)

	err := src.DeleteAuction(ctx, 6)
	require.ErrorIs(t, err, marketerrors.ErrRejected)
	require.Contains(t, err.Error(), "already started")

	require.ErrorIs(t, src.DeleteAuction(ctx, 7), marketerrors.ErrAuctionNotFound)
}

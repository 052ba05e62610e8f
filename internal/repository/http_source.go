package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
)

type tokenKey struct{}

// WithToken returns a context carrying the bearer token forwarded upstream
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// HTTPSource talks to the upstream auction backend over REST.
// The backend identifies the acting user from the bearer token, so username
// arguments only matter to other AuctionSource implementations.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an upstream client rooted at baseURL
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type createAuctionRequest struct {
	Name          string  `json:"name"`
	Categories    string  `json:"categories"`
	StartingPrice float64 `json:"startingPrice"`
	Location      string  `json:"location"`
	Country       string  `json:"country"`
	Description   string  `json:"description"`
	Started       string  `json:"started,omitempty"`
	Ends          string  `json:"ends"`
}

type placeBidRequest struct {
	Amount float64 `json:"amount"`
}

type sendMessageRequest struct {
	Recipient string `json:"recipient"`
	AuctionID int64  `json:"auctionId"`
	Content   string `json:"content"`
}

// ListAuctions fetches every auction
func (s *HTTPSource) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	var out []model.Auction
	if err := s.do(ctx, http.MethodGet, "/api/auctions", nil, &out); err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return out, nil
}

// ListAuctionsBySeller fetches the token holder's own auctions
func (s *HTTPSource) ListAuctionsBySeller(ctx context.Context, _ string) ([]model.Auction, error) {
	var out []model.Auction
	if err := s.do(ctx, http.MethodGet, "/api/auctions/my", nil, &out); err != nil {
		return nil, fmt.Errorf("list own auctions: %w", err)
	}
	return out, nil
}

// GetAuction fetches one auction
func (s *HTTPSource) GetAuction(ctx context.Context, auctionID int64) (model.Auction, error) {
	var out model.Auction
	if err := s.do(ctx, http.MethodGet, auctionPath(auctionID), nil, &out); err != nil {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", auctionID, err)
	}
	return out, nil
}

// CreateAuction lists a new auction for the token holder
func (s *HTTPSource) CreateAuction(ctx context.Context, a model.Auction) (model.Auction, error) {
	req := createAuctionRequest{
		Name:          a.Name,
		Categories:    a.Categories.String(),
		StartingPrice: a.StartingPrice,
		Location:      a.Location,
		Country:       a.Country,
		Description:   a.Description,
		Started:       a.Started,
		Ends:          a.Ends,
	}

	var out model.Auction
	if err := s.do(ctx, http.MethodPost, "/api/auctions", req, &out); err != nil {
		return model.Auction{}, fmt.Errorf("create auction: %w", err)
	}
	return out, nil
}

// DeleteAuction withdraws one of the token holder's auctions
func (s *HTTPSource) DeleteAuction(ctx context.Context, auctionID int64) error {
	if err := s.do(ctx, http.MethodDelete, auctionPath(auctionID), nil, nil); err != nil {
		return fmt.Errorf("delete auction %d: %w", auctionID, err)
	}
	return nil
}

// GetBids fetches the bids of an auction
func (s *HTTPSource) GetBids(ctx context.Context, auctionID int64) ([]model.Bid, error) {
	var out []model.Bid
	if err := s.do(ctx, http.MethodGet, auctionPath(auctionID)+"/bids", nil, &out); err != nil {
		return nil, fmt.Errorf("get bids for auction %d: %w", auctionID, err)
	}
	for i := range out {
		out[i].AuctionID = auctionID
	}
	return out, nil
}

// PlaceBid submits a bid as the token holder
func (s *HTTPSource) PlaceBid(ctx context.Context, auctionID int64, _ string, amount float64) (model.Bid, error) {
	var out model.Bid
	if err := s.do(ctx, http.MethodPost, auctionPath(auctionID)+"/bids", placeBidRequest{Amount: amount}, &out); err != nil {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID, err)
	}
	out.AuctionID = auctionID
	return out, nil
}

// GetInbox fetches messages addressed to the token holder
func (s *HTTPSource) GetInbox(ctx context.Context, _ string) ([]model.Message, error) {
	var out []model.Message
	if err := s.do(ctx, http.MethodGet, "/api/messages/inbox", nil, &out); err != nil {
		return nil, fmt.Errorf("get inbox: %w", err)
	}
	return out, nil
}

// GetSent fetches messages sent by the token holder
func (s *HTTPSource) GetSent(ctx context.Context, _ string) ([]model.Message, error) {
	var out []model.Message
	if err := s.do(ctx, http.MethodGet, "/api/messages/sent", nil, &out); err != nil {
		return nil, fmt.Errorf("get sent messages: %w", err)
	}
	return out, nil
}

// GetThread fetches the conversation with other about one auction
func (s *HTTPSource) GetThread(ctx context.Context, auctionID int64, _, other string) ([]model.Message, error) {
	q := url.Values{}
	q.Set("auctionId", strconv.FormatInt(auctionID, 10))
	q.Set("user", other)

	var out []model.Message
	if err := s.do(ctx, http.MethodGet, "/api/messages/thread?"+q.Encode(), nil, &out); err != nil {
		return nil, fmt.Errorf("get thread for auction %d with %s: %w", auctionID, other, err)
	}
	return out, nil
}

// SendMessage posts a message as the token holder
func (s *HTTPSource) SendMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	req := sendMessageRequest{Recipient: msg.Recipient, AuctionID: msg.AuctionID, Content: msg.Content}

	var out model.Message
	if err := s.do(ctx, http.MethodPost, "/api/messages", req, &out); err != nil {
		return model.Message{}, fmt.Errorf("send message for auction %d: %w", msg.AuctionID, err)
	}
	return out, nil
}

// MarkRead flags a message as read
func (s *HTTPSource) MarkRead(ctx context.Context, messageID int64, _ string) error {
	path := "/api/messages/" + strconv.FormatInt(messageID, 10) + "/read"
	if err := s.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("mark message %d read: %w", messageID, err)
	}
	return nil
}

func auctionPath(auctionID int64) string {
	return "/api/auctions/" + strconv.FormatInt(auctionID, 10)
}

// do sends one request and decodes a JSON body into out when out is non-nil
func (s *HTTPSource) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", marketerrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return statusError(resp.StatusCode, strings.TrimSpace(string(text)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", marketerrors.ErrUpstream, err)
	}
	return nil
}

func statusError(code int, text string) error {
	if text == "" {
		text = http.StatusText(code)
	}

	var kind error
	switch {
	case code == http.StatusNotFound:
		kind = marketerrors.ErrAuctionNotFound
	case code == http.StatusBadRequest:
		kind = marketerrors.ErrRejected
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		kind = marketerrors.ErrUnauthorized
	default:
		kind = marketerrors.ErrUpstream
	}
	return fmt.Errorf("%w - upstream %d: %s", kind, code, text)
}

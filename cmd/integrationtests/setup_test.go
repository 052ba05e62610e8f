package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	market "auction-marketplace/internal/marketService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"

	"github.com/gin-gonic/gin"
)

const stampLayout = "2006-01-02T15:04:05"

// stamp formats a time the way the backend does: naive UTC
func stamp(t time.Time) string {
	return t.UTC().Format(stampLayout)
}

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := market.NewMarketService(repo)
	router := server.SetupRouter(service)
	return router, repo
}

// SetupTestRouterWithAuctions initializes the router and seeds the repo with auctions and their bids.
func SetupTestRouterWithAuctions(t *testing.T, auctions []model.Auction, bids ...model.Bid) (*gin.Engine, *repository.MemoryRepo) {
	router, repo := SetupTestRouter()
	for _, a := range auctions {
		repo.AddAuction(a)
	}
	for _, b := range bids {
		if err := repo.AddBid(b); err != nil {
			t.Fatalf("failed to seed bid: %v", err)
		}
	}
	return router, repo
}

// ExecuteRequestAndParse executes an HTTP request as user and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, user string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-Username", user)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// dataMap returns the envelope's data object
func dataMap(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}

// dataList returns the envelope's data array
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not a list: %v", resp)
	}
	return data
}

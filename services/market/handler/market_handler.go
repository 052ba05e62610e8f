package handler

import (
	"context"
	"fmt"
	"net/http"

	market "auction-marketplace/internal/marketService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type MarketServiceInterface interface {
	ListAuctions(ctx context.Context, query string) ([]market.AuctionSummary, error)
	ListMyAuctions(ctx context.Context, viewer model.Viewer) ([]market.AuctionSummary, error)
	GetAuctionView(ctx context.Context, auctionID int64, viewer model.Viewer) (market.AuctionView, error)
	GetBids(ctx context.Context, auctionID int64) ([]model.Bid, error)
	CreateAuction(ctx context.Context, viewer model.Viewer, a model.Auction) (model.Auction, error)
	DeleteAuction(ctx context.Context, auctionID int64, viewer model.Viewer) error
	PlaceBid(ctx context.Context, auctionID int64, viewer model.Viewer, amount float64) (model.Bid, error)
	GetInbox(ctx context.Context, viewer model.Viewer) ([]model.Message, error)
	GetSent(ctx context.Context, viewer model.Viewer) ([]model.Message, error)
	GetThread(ctx context.Context, auctionID int64, viewer model.Viewer, with string) (market.Thread, error)
	SendMessage(ctx context.Context, auctionID int64, viewer model.Viewer, recipient, content string) (model.Message, error)
	MarkThreadRead(ctx context.Context, auctionID int64, viewer model.Viewer, with string) (int, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// fail writes the mapped error response; server-side failures log at error level
func fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request failed", fields)
}

func summaries(list []market.AuctionSummary) []helpers.AuctionSummaryResponse {
	out := make([]helpers.AuctionSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, helpers.AuctionSummaryResponse{
			AuctionResponse: helpers.NewAuctionResponse(s.Auction),
			CurrentPrice:    s.CurrentPrice,
			IsClosed:        s.IsClosed,
		})
	}
	return out
}

// ListAuctionsHandler handles GET /auctions
func (h *MarketHandler) ListAuctionsHandler(c *gin.Context) {
	query := c.Query("q")
	list, err := h.service.ListAuctions(c.Request.Context(), query)
	if err != nil {
		fail(c, "ListAuctionsHandler", err, map[string]any{"query": query})
		return
	}

	utils.JSONResponse(c, http.StatusOK, summaries(list), "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"query": query,
		"count": len(list),
	})
}

// ListMyAuctionsHandler handles GET /auctions/mine
func (h *MarketHandler) ListMyAuctionsHandler(c *gin.Context) {
	viewer := helpers.ViewerFrom(c)
	list, err := h.service.ListMyAuctions(c.Request.Context(), viewer)
	if err != nil {
		fail(c, "ListMyAuctionsHandler", err, map[string]any{"username": viewer.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, summaries(list), "auctions retrieved successfully")
	helpers.LogSuccess("ListMyAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"username": viewer.Username,
		"count":    len(list),
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *MarketHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	viewer := helpers.ViewerFrom(c)
	created, err := h.service.CreateAuction(c.Request.Context(), viewer, req.ToAuction())
	if err != nil {
		fail(c, "CreateAuctionHandler", err, map[string]any{"username": viewer.Username, "name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(created), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.ID,
		"seller":     created.SellerUserID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *MarketHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "GetAuctionHandler", err, nil)
		return
	}

	viewer := helpers.ViewerFrom(c)
	view, err := h.service.GetAuctionView(c.Request.Context(), auctionID, viewer)
	if err != nil {
		fail(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := helpers.AuctionViewResponse{
		Auction:    helpers.NewAuctionResponse(view.Auction),
		Bids:       helpers.NewBidResponses(view.Bids),
		Status:     view.Status,
		CanBid:     view.CanBid,
		CanDelete:  view.CanDelete,
		MinimumBid: view.MinimumBid,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id":  auctionID,
		"is_closed":   view.Status.IsClosed,
		"winner":      view.Status.WinnerUsername(),
		"can_message": view.Status.CanMessage,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *MarketHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "DeleteAuctionHandler", err, nil)
		return
	}

	viewer := helpers.ViewerFrom(c)
	if err := h.service.DeleteAuction(c.Request.Context(), auctionID, viewer); err != nil {
		fail(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": auctionID, "username": viewer.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
		"seller":     viewer.Username,
	})
}

// GetBidsHandler handles GET /auctions/:auction_id/bids
func (h *MarketHandler) GetBidsHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "GetBidsHandler", err, nil)
		return
	}

	bids, err := h.service.GetBids(c.Request.Context(), auctionID)
	if err != nil {
		fail(c, "GetBidsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "PlaceBidHandler", err, nil)
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	viewer := helpers.ViewerFrom(c)
	bid, err := h.service.PlaceBid(c.Request.Context(), auctionID, viewer, req.Amount)
	if err != nil {
		fail(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"username":   viewer.Username,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": auctionID,
		"username":   viewer.Username,
		"amount":     bid.Amount,
	})
}

// GetThreadHandler handles GET /auctions/:auction_id/messages/:user
func (h *MarketHandler) GetThreadHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "GetThreadHandler", err, nil)
		return
	}

	viewer := helpers.ViewerFrom(c)
	with := c.Param("user")
	thread, err := h.service.GetThread(c.Request.Context(), auctionID, viewer, with)
	if err != nil {
		fail(c, "GetThreadHandler", err, map[string]any{"auction_id": auctionID, "with": with})
		return
	}

	resp := helpers.ThreadResponse{
		AuctionID: thread.AuctionID,
		With:      thread.With,
		Messages:  helpers.NewMessageResponses(thread.Messages),
		CanSend:   thread.CanSend,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "thread retrieved successfully")
	helpers.LogSuccess("GetThreadHandler", "thread retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"with":       with,
		"count":      len(thread.Messages),
	})
}

// SendMessageHandler handles POST /auctions/:auction_id/messages/:user
func (h *MarketHandler) SendMessageHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "SendMessageHandler", err, nil)
		return
	}

	var req helpers.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SendMessageHandler", err)
		return
	}

	viewer := helpers.ViewerFrom(c)
	recipient := c.Param("user")
	msg, err := h.service.SendMessage(c.Request.Context(), auctionID, viewer, recipient, req.Content)
	if err != nil {
		fail(c, "SendMessageHandler", err, map[string]any{
			"auction_id": auctionID,
			"sender":     viewer.Username,
			"recipient":  recipient,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewMessageResponse(msg), "message sent successfully")
	helpers.LogSuccess("SendMessageHandler", "message sent successfully", map[string]any{
		"message_id": msg.ID,
		"auction_id": auctionID,
		"sender":     viewer.Username,
		"recipient":  recipient,
	})
}

// MarkThreadReadHandler handles POST /auctions/:auction_id/messages/:user/read
func (h *MarketHandler) MarkThreadReadHandler(c *gin.Context) {
	auctionID, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "MarkThreadReadHandler", err, nil)
		return
	}

	viewer := helpers.ViewerFrom(c)
	with := c.Param("user")
	marked, err := h.service.MarkThreadRead(c.Request.Context(), auctionID, viewer, with)
	if err != nil {
		fail(c, "MarkThreadReadHandler", err, map[string]any{"auction_id": auctionID, "with": with})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.MarkReadResponse{Marked: marked}, "thread marked read")
	helpers.LogSuccess("MarkThreadReadHandler", "thread marked read", map[string]any{
		"auction_id": auctionID,
		"with":       with,
		"marked":     marked,
	})
}

// GetInboxHandler handles GET /messages/inbox
func (h *MarketHandler) GetInboxHandler(c *gin.Context) {
	viewer := helpers.ViewerFrom(c)
	msgs, err := h.service.GetInbox(c.Request.Context(), viewer)
	if err != nil {
		fail(c, "GetInboxHandler", err, map[string]any{"username": viewer.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewMessageResponses(msgs), "inbox retrieved successfully")
	helpers.LogSuccess("GetInboxHandler", "inbox retrieved successfully", map[string]any{
		"username": viewer.Username,
		"count":    len(msgs),
	})
}

// GetSentHandler handles GET /messages/sent
func (h *MarketHandler) GetSentHandler(c *gin.Context) {
	viewer := helpers.ViewerFrom(c)
	msgs, err := h.service.GetSent(c.Request.Context(), viewer)
	if err != nil {
		fail(c, "GetSentHandler", err, map[string]any{"username": viewer.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewMessageResponses(msgs), "sent messages retrieved successfully")
	helpers.LogSuccess("GetSentHandler", "sent messages retrieved successfully", map[string]any{
		"username": viewer.Username,
		"count":    len(msgs),
	})
}

package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseAuctionID reads the :auction_id path parameter. Non-numeric or
// non-positive IDs are reported as a missing auction.
func ParseAuctionID(c *gin.Context) (int64, error) {
	raw := c.Param("auction_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad id %q", marketerrors.ErrAuctionNotFound, raw)
	}
	return id, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrNotLoggedIn):
		return http.StatusUnauthorized, "login required"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusForbidden, "not authorized"
	case errors.Is(err, marketerrors.ErrMessagingDenied):
		return http.StatusForbidden, "messaging not allowed for this auction"
	case errors.Is(err, marketerrors.ErrNotSeller):
		return http.StatusForbidden, "only the seller can delete this auction"
	case errors.Is(err, marketerrors.ErrOwnAuction):
		return http.StatusForbidden, "cannot bid on own auction"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, marketerrors.ErrInvalidMessage):
		return http.StatusBadRequest, "invalid message"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, marketerrors.ErrAuctionStarted):
		return http.StatusConflict, "auction has already started"
	case errors.Is(err, marketerrors.ErrRejected):
		return http.StatusUnprocessableEntity, "rejected by backend"
	case errors.Is(err, marketerrors.ErrUpstream):
		return http.StatusBadGateway, "backend unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

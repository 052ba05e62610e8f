package marketerrors

import "errors"

// Upstream errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUnauthorized    = errors.New("not authorized by upstream")
	ErrRejected        = errors.New("request rejected by upstream")
	ErrUpstream        = errors.New("upstream request failed")
)

// business logic errors
var (
	ErrNotLoggedIn     = errors.New("login required")
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrAuctionClosed   = errors.New("auction is closed")
	ErrOwnAuction      = errors.New("cannot bid on own auction")
	ErrNotSeller       = errors.New("only the seller can delete an auction")
	ErrAuctionStarted  = errors.New("auction has already started")
	ErrInvalidAuction  = errors.New("invalid auction details")
	ErrInvalidMessage  = errors.New("invalid message")
	ErrMessagingDenied = errors.New("only the winner and seller can message each other after close")
)

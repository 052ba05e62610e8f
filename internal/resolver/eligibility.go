package resolver

// CanMessage reports whether actingUser may message recipient about an auction.
// Only the winner and the seller of a closed auction can talk, and only to each
// other. An empty string stands for an unknown party.
func CanMessage(closed bool, winner, seller, actingUser, recipient string) bool {
	if !closed || winner == "" || actingUser == "" {
		return false
	}

	winnerToSeller := actingUser == winner && recipient == seller
	sellerToWinner := actingUser == seller && recipient == winner
	return winnerToSeller != sellerToWinner
}

// Counterparty returns the other side of the channel for username: the winner
// when username is the seller, otherwise the seller.
func Counterparty(winner, seller, username string) string {
	if username != "" && username == seller {
		return winner
	}
	return seller
}

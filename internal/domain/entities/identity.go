package entities

// GuestID is the fixed owner id recorded for unauthenticated callers. Every
// request without a valid access token acts as this single well-known identity.
const GuestID = "guest_00000000000000000000"

// Identity is the acting caller resolved for each request. Ownership checks
// compare Identity.ID against Interview.OwnerID by plain string equality,
// guests and registered users alike.
type Identity struct {
	ID      string
	IsGuest bool
}

// GuestIdentity returns the shared guest identity
func GuestIdentity() Identity {
	return Identity{ID: GuestID, IsGuest: true}
}

// NewUserIdentity returns the identity of a registered user
func NewUserIdentity(userID string) Identity {
	return Identity{ID: userID}
}

package models

// Profile describes the account behind the current session, as reported by
// the server. It is held in memory only and is re-fetched whenever a
// persisted token is resumed.
type Profile struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	DateJoined string `json:"date_joined"`
}

package model

// User represents an application user, created lazily on first
// authenticated visit. Sub is the identity provider's subject claim.
// Users are never updated or deleted.
type User struct {
	ID  int64  `json:"id"`
	Sub string `json:"sub"`
}

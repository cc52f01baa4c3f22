package entity

import "time"

// Admin is a back-office account. Usernames are unique and case-sensitive.
// The password hash is persisted with the document; handlers never render an
// Admin directly.
type Admin struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"password_hash" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func (a *Admin) DocumentID() string { return a.ID }

func (a *Admin) Assign(id string, now time.Time) {
	a.ID = id
	a.CreatedAt = now
}

package models

import (
	"fmt"
	"time"
)

// Account is a credentialed principal capable of authenticating against the
// weather API.
//
// A freshly created account is always disabled; enabling it is a separate
// administrative action.
type Account struct {
	// ID is the store-assigned identifier. It is also the subject carried by
	// issued access tokens.
	ID int64 `json:"id"`

	// Username is unique across all accounts and compared case-sensitively.
	Username string `json:"username"`

	// SecretHash is the encoded output of a salted one-way hash of the
	// account secret. It never leaves the server.
	SecretHash string `json:"-"`

	// Enabled reports whether the account may authenticate.
	Enabled bool `json:"enabled"`

	// CreatedAt is set once, when the account is persisted.
	CreatedAt time.Time `json:"created_at"`

	// LastLoginAt is updated only by a successful authentication.
	// Nil until the first login.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// String renders the account without credential material.
func (a Account) String() string {
	return fmt.Sprintf("<Account: id: %d username: %s>", a.ID, a.Username)
}

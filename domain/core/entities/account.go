package entities

import "time"

// Account is the immutable record of a registered account.
// Identifiers are caller-assigned; the store never generates them.
type Account struct {
	id          int64
	displayName string
	joinedAt    time.Time
}

// NewAccount creates an account record with the given caller-assigned id.
func NewAccount(id int64, displayName string, joinedAt time.Time) *Account {
	return &Account{
		id:          id,
		displayName: displayName,
		joinedAt:    joinedAt,
	}
}

// ID returns the account's unique identifier
func (a *Account) ID() int64 {
	return a.id
}

// DisplayName returns the account's display name
func (a *Account) DisplayName() string {
	return a.displayName
}

// JoinedAt returns when the account joined
func (a *Account) JoinedAt() time.Time {
	return a.joinedAt
}

package models

import "time"

// MaxAliasLength bounds Account.Alias; it matches the account.alias column.
const MaxAliasLength = 255

type User struct {
	Name string `json:"name"`
}

// Account is the API representation of an account.
type Account struct {
	ID      uint64 `json:"id"`
	Alias   string `json:"alias" validate:"max=255"`
	Balance int32  `json:"balance"`
}

// AccountRecord is the persisted representation of an account.
// CreatedAt is storage metadata and never serialised to the API.
type AccountRecord struct {
	ID        uint64    `json:"id" db:"id"`
	Alias     string    `json:"alias" db:"alias"`
	Balance   int32     `json:"balance" db:"balance"`
	CreatedAt time.Time `json:"createdTimestamp" db:"created_at"`
}

// ToAccount maps the persisted record to its API shape.
func (r AccountRecord) ToAccount() Account {
	return Account{ID: r.ID, Alias: r.Alias, Balance: r.Balance}
}

// ToRecord maps an API account to a record. The id is carried over as is;
// stores ignore it on insert.
func (a Account) ToRecord() AccountRecord {
	return AccountRecord{ID: a.ID, Alias: a.Alias, Balance: a.Balance}
}

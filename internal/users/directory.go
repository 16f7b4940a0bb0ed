// Package users holds the fixed registry of known callers.
package users

import "github.com/ultimatebank/account-service/internal/models"

const (
	Admin    = "admin"
	Customer = "customer"
)

// Directory maps a user name to a User. It is built once and never mutated,
// so it is safe for concurrent use without locking.
type Directory struct {
	usersByName map[string]models.User
}

// NewDirectory builds a directory containing exactly the given names.
func NewDirectory(names ...string) *Directory {
	usersByName := make(map[string]models.User, len(names))
	for _, name := range names {
		usersByName[name] = models.User{Name: name}
	}
	return &Directory{usersByName: usersByName}
}

// Default returns the directory seeded with the admin and customer users.
func Default() *Directory {
	return NewDirectory(Admin, Customer)
}

func (d *Directory) FindUser(name string) (models.User, bool) {
	user, ok := d.usersByName[name]
	return user, ok
}

package core

import (
	"fmt"
)

// Directory holds every open account in insertion order. Entries are
// shared pointers: mutations made through a logged-in session update
// the directory's record in place.
type Directory struct {
	accounts []*Account
}

// NewDirectory builds the account book, enforcing handle uniqueness
// across all entries.
func NewDirectory(accounts ...*Account) (*Directory, error) {
	d := &Directory{}
	for _, acc := range accounts {
		if err := d.Add(acc); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Add appends an account, rejecting duplicate handles.
func (d *Directory) Add(acc *Account) error {
	if d.FindByHandle(acc.Handle) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateHandle, acc.Handle)
	}

	d.accounts = append(d.accounts, acc)
	return nil
}

// FindByHandle returns the account with the given handle, or nil when
// no entry matches. An empty handle matches nothing.
func (d *Directory) FindByHandle(handle string) *Account {
	if handle == "" {
		return nil
	}
	for _, acc := range d.accounts {
		if acc.Handle == handle {
			return acc
		}
	}
	return nil
}

// RemoveByHandle deletes the matching account; unknown handles are a
// no-op.
func (d *Directory) RemoveByHandle(handle string) {
	for i, acc := range d.accounts {
		if acc.Handle == handle {
			d.accounts = append(d.accounts[:i], d.accounts[i+1:]...)
			return
		}
	}
}

// Accounts returns the directory entries in insertion order.
func (d *Directory) Accounts() []*Account {
	return d.accounts
}

func (d *Directory) Len() int {
	return len(d.accounts)
}

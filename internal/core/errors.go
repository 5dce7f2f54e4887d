package core

import (
	"errors"
)

// Domain errors. Session operations report these so callers can tell
// rejections apart; a rejected operation never mutates any account and
// never requests a render, so callers ignoring the error observe a
// plain no-op.
var (
	ErrLoggedOut          = errors.New("no account is logged in")
	ErrInvalidCredentials = errors.New("handle or pin does not match")
	ErrBadAmount          = errors.New("amount must be > 0")
	ErrUnknownRecipient   = errors.New("recipient account not found")
	ErrInsufficientFunds  = errors.New("insufficient funds for transfer")
	ErrSelfTransfer       = errors.New("cannot transfer to own account")
	ErrLoanDenied         = errors.New("no qualifying movement for loan")
)

// Construction errors.
var (
	ErrDuplicateHandle = errors.New("handle already taken")
	ErrBadOwner        = errors.New("owner name must not be empty")
	ErrBadPIN          = errors.New("pin must be a 4-digit number")
	ErrBadRate         = errors.New("interest rate must not be negative")
)

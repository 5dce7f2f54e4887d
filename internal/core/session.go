package core

// Session is the single-user controller over the account directory. It
// starts logged out and owns the statement sort flag. All operations
// are synchronous; a failed precondition leaves every account untouched
// and requests no render, with the reason reported as a sentinel error
// the caller is free to ignore.
type Session struct {
	directory *Directory
	presenter Presenter
	current   *Account
	sorted    bool
}

func NewSession(directory *Directory, presenter Presenter) *Session {
	return &Session{
		directory: directory,
		presenter: presenter,
	}
}

// Current returns the logged-in account, or nil.
func (s *Session) Current() *Account {
	return s.current
}

func (s *Session) LoggedIn() bool {
	return s.current != nil
}

// Sorted reports the statement display-order flag.
func (s *Session) Sorted() bool {
	return s.sorted
}

// Login authenticates by handle and pin. On success the session holds
// the directory's account record itself, not a copy, the login form is
// cleared and the statement rendered.
func (s *Session) Login(handle string, pin int) error {
	acc := s.directory.FindByHandle(handle)
	if acc == nil || acc.PIN != pin {
		return ErrInvalidCredentials
	}

	s.current = acc
	s.presenter.ClearLoginInputs()
	s.refresh()
	return nil
}

// Transfer moves amount from the current account to the named
// recipient. The transfer form is cleared before the checks run, so a
// rejected transfer still blanks its fields.
func (s *Session) Transfer(amount float64, recipientHandle string) error {
	if s.current == nil {
		return ErrLoggedOut
	}

	recipient := s.directory.FindByHandle(recipientHandle)
	s.presenter.ClearTransferInputs()

	switch {
	case amount <= 0:
		return ErrBadAmount
	case recipient == nil:
		return ErrUnknownRecipient
	case !s.current.HasSufficientFunds(amount):
		return ErrInsufficientFunds
	case recipient.Handle == s.current.Handle:
		return ErrSelfTransfer
	}

	s.current.withdraw(amount)
	recipient.deposit(amount)
	s.refresh()
	return nil
}

// RequestLoan credits amount to the current account when some prior
// movement is at least 10% of it. That single-movement rule is the
// bank's whole credit check.
func (s *Session) RequestLoan(amount float64) error {
	if s.current == nil {
		return ErrLoggedOut
	}
	if amount <= 0 {
		return ErrBadAmount
	}
	if !s.hasQualifyingMovement(amount) {
		return ErrLoanDenied
	}

	s.current.deposit(amount)
	s.refresh()
	s.presenter.ClearLoanInput()
	return nil
}

func (s *Session) hasQualifyingMovement(amount float64) bool {
	for _, mov := range s.current.Movements {
		if mov >= amount*0.10 {
			return true
		}
	}
	return false
}

// CloseAccount removes the current account from the directory after
// the owner re-enters handle and pin. The session drops back to logged
// out and the UI is asked to hide.
func (s *Session) CloseAccount(handle string, pin int) error {
	if s.current == nil {
		return ErrLoggedOut
	}
	if handle != s.current.Handle || pin != s.current.PIN {
		return ErrInvalidCredentials
	}

	s.directory.RemoveByHandle(s.current.Handle)
	s.current = nil
	s.presenter.ClearCloseInputs()
	s.presenter.HideUI()
	return nil
}

// ToggleSort flips the statement display order. The flag flips whether
// or not anyone is logged in; the stored movements are never reordered,
// only the rendered view is.
func (s *Session) ToggleSort() {
	s.sorted = !s.sorted
	if s.current != nil {
		s.presenter.RenderAccount(NewDisplayModel(s.current, s.sorted))
	}
}

// refresh re-renders the current account's statement in chronological
// order; only ToggleSort renders the sorted view.
func (s *Session) refresh() {
	s.presenter.RenderAccount(NewDisplayModel(s.current, false))
}

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestBank seeds a two-account directory: jonas ("js", balance 3840)
// and sarah ("ss", balance 2270).
func newTestBank(t *testing.T) (*Directory, *Account, *Account) {
	t.Helper()

	jonas := mustAccount(t, "Jonas Schmedtmann", 1111, 1.2,
		[]float64{200, 450, -400, 3000, -650, -130, 70, 1300})
	sarah := mustAccount(t, "Sarah Smith", 4444, 1,
		[]float64{430, 1000, 700, 50, 90})

	d, err := NewDirectory(jonas, sarah)
	require.NoError(t, err)

	return d, jonas, sarah
}

func totalBalance(d *Directory) float64 {
	var total float64
	for _, acc := range d.Accounts() {
		total += acc.Balance()
	}
	return total
}

func TestSession_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		handle        string
		pin           int
		expectedError error
	}{
		{
			name:   "correct handle and pin",
			handle: "js",
			pin:    1111,
		},
		{
			name:          "correct handle wrong pin",
			handle:        "js",
			pin:           9999,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "unknown handle",
			handle:        "zz",
			pin:           1111,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "empty handle",
			handle:        "",
			pin:           1111,
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			directory, jonas, _ := newTestBank(t)
			presenter := NewMockPresenter(ctrl)

			session := NewSession(directory, presenter)

			if tt.expectedError == nil {
				presenter.EXPECT().ClearLoginInputs()
				presenter.EXPECT().RenderAccount(gomock.Any()).Do(func(model DisplayModel) {
					require.Equal(t, "js", model.Handle)
					require.InDelta(t, 3840, model.Balance, 1e-9)
				})
			}

			err := session.Login(tt.handle, tt.pin)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.False(t, session.LoggedIn())
				return
			}

			require.NoError(t, err)
			// The session holds the directory's record, not a copy.
			require.Same(t, jonas, session.Current())
		})
	}
}

func TestSession_Transfer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	directory, jonas, sarah := newTestBank(t)
	presenter := NewMockPresenter(ctrl)

	session := NewSession(directory, presenter)
	session.current = jonas

	totalBefore := totalBalance(directory)

	presenter.EXPECT().ClearTransferInputs()
	presenter.EXPECT().RenderAccount(gomock.Any())

	require.NoError(t, session.Transfer(500, "ss"))

	require.InDelta(t, 3340, jonas.Balance(), 1e-9)
	require.InDelta(t, 2770, sarah.Balance(), 1e-9)
	require.InDelta(t, -500, jonas.Movements[len(jonas.Movements)-1], 1e-9)
	require.InDelta(t, 500, sarah.Movements[len(sarah.Movements)-1], 1e-9)
	require.InDelta(t, totalBefore, totalBalance(directory), 1e-9)
}

func TestSession_Transfer_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		amount        float64
		recipient     string
		expectedError error
	}{
		{
			name:          "zero amount",
			amount:        0,
			recipient:     "ss",
			expectedError: ErrBadAmount,
		},
		{
			name:          "negative amount",
			amount:        -50,
			recipient:     "ss",
			expectedError: ErrBadAmount,
		},
		{
			name:          "unknown recipient",
			amount:        100,
			recipient:     "zz",
			expectedError: ErrUnknownRecipient,
		},
		{
			name:          "insufficient funds",
			amount:        1000000,
			recipient:     "ss",
			expectedError: ErrInsufficientFunds,
		},
		{
			name:          "transfer to self",
			amount:        100,
			recipient:     "js",
			expectedError: ErrSelfTransfer,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			directory, jonas, sarah := newTestBank(t)
			presenter := NewMockPresenter(ctrl)

			session := NewSession(directory, presenter)
			session.current = jonas

			// A rejected transfer still blanks its form fields.
			presenter.EXPECT().ClearTransferInputs()

			jonasBefore := len(jonas.Movements)
			sarahBefore := len(sarah.Movements)

			require.ErrorIs(t, session.Transfer(tt.amount, tt.recipient), tt.expectedError)

			require.Len(t, jonas.Movements, jonasBefore)
			require.Len(t, sarah.Movements, sarahBefore)
		})
	}
}

func TestSession_Transfer_LoggedOut(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	directory, _, _ := newTestBank(t)
	session := NewSession(directory, NewMockPresenter(ctrl))

	require.ErrorIs(t, session.Transfer(100, "ss"), ErrLoggedOut)
}

func TestSession_RequestLoan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		amount        float64
		expectedError error
	}{
		{
			name:   "granted on qualifying movement",
			amount: 10000, // jonas has a 3000 movement >= 1000
		},
		{
			name:   "granted at exact 10 percent boundary",
			amount: 30000, // 3000 >= 3000
		},
		{
			name:          "denied without qualifying movement",
			amount:        50000, // would need a movement >= 5000
			expectedError: ErrLoanDenied,
		},
		{
			name:          "zero amount",
			amount:        0,
			expectedError: ErrBadAmount,
		},
		{
			name:          "negative amount",
			amount:        -100,
			expectedError: ErrBadAmount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			directory, jonas, _ := newTestBank(t)
			presenter := NewMockPresenter(ctrl)

			session := NewSession(directory, presenter)
			session.current = jonas

			if tt.expectedError == nil {
				presenter.EXPECT().RenderAccount(gomock.Any())
				presenter.EXPECT().ClearLoanInput()
			}

			movementsBefore := len(jonas.Movements)
			err := session.RequestLoan(tt.amount)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Len(t, jonas.Movements, movementsBefore)
				return
			}

			require.NoError(t, err)
			require.Len(t, jonas.Movements, movementsBefore+1)
			require.InDelta(t, tt.amount, jonas.Movements[len(jonas.Movements)-1], 1e-9)
		})
	}
}

func TestSession_RequestLoan_LoggedOut(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	directory, _, _ := newTestBank(t)
	session := NewSession(directory, NewMockPresenter(ctrl))

	require.ErrorIs(t, session.RequestLoan(100), ErrLoggedOut)
}

func TestSession_CloseAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		handle        string
		pin           int
		expectedError error
	}{
		{
			name:   "matching handle and pin",
			handle: "js",
			pin:    1111,
		},
		{
			name:          "wrong pin",
			handle:        "js",
			pin:           9999,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "someone else's handle",
			handle:        "ss",
			pin:           1111,
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			directory, jonas, _ := newTestBank(t)
			presenter := NewMockPresenter(ctrl)

			session := NewSession(directory, presenter)
			session.current = jonas

			if tt.expectedError == nil {
				presenter.EXPECT().ClearCloseInputs()
				presenter.EXPECT().HideUI()
			}

			err := session.CloseAccount(tt.handle, tt.pin)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Same(t, jonas, session.Current())
				require.Same(t, jonas, directory.FindByHandle("js"))
				return
			}

			require.NoError(t, err)
			require.False(t, session.LoggedIn())
			require.Nil(t, directory.FindByHandle("js"))
			// The other account is untouched.
			require.NotNil(t, directory.FindByHandle("ss"))
		})
	}
}

func TestSession_CloseAccount_LoggedOut(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	directory, _, _ := newTestBank(t)
	session := NewSession(directory, NewMockPresenter(ctrl))

	require.ErrorIs(t, session.CloseAccount("js", 1111), ErrLoggedOut)
	require.NotNil(t, directory.FindByHandle("js"))
}

func TestSession_ToggleSort(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	directory, jonas, _ := newTestBank(t)
	presenter := NewMockPresenter(ctrl)

	session := NewSession(directory, presenter)
	session.current = jonas

	chronological := append([]float64(nil), jonas.Movements...)

	var rendered []DisplayModel
	presenter.EXPECT().RenderAccount(gomock.Any()).Times(2).Do(func(model DisplayModel) {
		rendered = append(rendered, model)
	})

	session.ToggleSort()
	require.True(t, session.Sorted())

	session.ToggleSort()
	require.False(t, session.Sorted())

	require.Len(t, rendered, 2)

	// First render is ascending by amount.
	first := rendered[0].Movements
	for i := 1; i < len(first); i++ {
		require.LessOrEqual(t, first[i-1].Amount, first[i].Amount)
	}

	// Second render is back to chronological order.
	second := rendered[1].Movements
	require.Len(t, second, len(chronological))
	for i, line := range second {
		require.InDelta(t, chronological[i], line.Amount, 1e-9)
	}

	// The stored sequence was never reordered.
	require.Equal(t, chronological, jonas.Movements)
}

func TestSession_ToggleSort_FlipsWhileLoggedOut(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	directory, _, _ := newTestBank(t)
	session := NewSession(directory, NewMockPresenter(ctrl))

	session.ToggleSort()
	require.True(t, session.Sorted())

	session.ToggleSort()
	require.False(t, session.Sorted())
}

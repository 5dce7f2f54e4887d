package core

//go:generate go tool go.uber.org/mock/mockgen -source=presenter.go -destination=presenter_mock.go -package=core

// Presenter is the rendering and form layer the session drives. The
// core computes what to show and when fields are blanked; the
// presenter decides how.
type Presenter interface {
	RenderAccount(model DisplayModel)
	HideUI()
	ClearLoginInputs()
	ClearTransferInputs()
	ClearLoanInput()
	ClearCloseInputs()
}

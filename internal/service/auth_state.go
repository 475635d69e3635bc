package service

// State enumerates the two authorization states. There is nothing in
// between: a failed sign-in leaves the machine in LoggedOut.
type State int

const (
	StateLoggedOut State = iota
	StateLoggedIn
)

func (s State) String() string {
	if s == StateLoggedIn {
		return "logged-in"
	}
	return "logged-out"
}

// Form enumerates the two authorization sub-forms. Exactly one is visually
// active at a time.
type Form int

const (
	FormSignIn Form = iota
	FormCreateAccount
)

func (f Form) String() string {
	if f == FormCreateAccount {
		return "create-account"
	}
	return "sign-in"
}

// ViewState is the render instruction produced by every state-machine
// transition. It is a plain value decoupled from any rendering technology:
// the UI layer decides how to show it.
type ViewState struct {
	// State is the authorization state after the transition.
	State State

	// ActiveForm selects which sub-form is visible while logged out.
	ActiveForm Form

	// PanelOpen reports whether the authorization panel is revealed.
	PanelOpen bool

	// UserName is the visible display name; empty while logged out.
	UserName string
}

// LoggedOut is the initial view: sign-in form selected, panel hidden.
func LoggedOut() ViewState {
	return ViewState{State: StateLoggedOut, ActiveForm: FormSignIn}
}

// LoggedIn is the view after a successful sign-in or session restore.
func LoggedIn(name string) ViewState {
	return ViewState{State: StateLoggedIn, UserName: name}
}

// OpenPanel reveals the authorization panel.
func (v ViewState) OpenPanel() ViewState {
	v.PanelOpen = true
	return v
}

// ClosePanel hides the authorization panel.
func (v ViewState) ClosePanel() ViewState {
	v.PanelOpen = false
	return v
}

// SwitchForm activates the given sub-form exclusively. Switching has no
// effect while logged in: there is no form to show.
func (v ViewState) SwitchForm(form Form) ViewState {
	if v.State == StateLoggedIn {
		return v
	}
	v.ActiveForm = form
	return v
}

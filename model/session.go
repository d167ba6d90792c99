package model

// SessionStatus is the lifecycle state of a session. The only transition
// is StatusOpen -> StatusFinalized, exactly once.
type SessionStatus int

const (
	StatusOpen SessionStatus = iota
	StatusFinalized
)

// Session is one round of game-option selection tied to a proposed time.
// Signups maps option id to participant identifiers in signup order; a
// participant holds at most one slot across all options of a session.
// Sessions are owned by the store and mutated only by the quorum engine.
type Session struct {
	ID            string
	ScheduledTime string
	Signups       map[string][]string
	Status        SessionStatus
	WinningOption string
}

// SessionView is an immutable snapshot of a session handed to renderers,
// with options in catalog order.
type SessionView struct {
	ID            string
	ScheduledTime string
	Status        SessionStatus
	WinningOption string
	Options       []OptionView
}

// OptionView is one catalog option with its current signups.
type OptionView struct {
	ID           string
	Label        string
	Participants []string
}

// Winning returns the view of the winning option. The second return is
// false while the session is still open.
func (v SessionView) Winning() (OptionView, bool) {
	if v.Status != StatusFinalized {
		return OptionView{}, false
	}
	for _, opt := range v.Options {
		if opt.ID == v.WinningOption {
			return opt, true
		}
	}
	return OptionView{}, false
}

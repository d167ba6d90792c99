package model

// OutcomeKind tags the result of a signup attempt.
type OutcomeKind int

const (
	// OutcomeIgnored means no mutation happened: the session is unknown
	// or finalized, the option is unknown, or the participant already
	// holds a slot. Redelivered events land here and that is fine.
	OutcomeIgnored OutcomeKind = iota
	// OutcomeUpdated means the signup was recorded without reaching quorum.
	OutcomeUpdated
	// OutcomeFinalized means this signup reached quorum and locked the session.
	OutcomeFinalized
)

// Outcome is what the quorum engine reports back to its caller. Session
// is a snapshot taken while the engine held the session; it is the zero
// value when Kind is OutcomeIgnored.
type Outcome struct {
	Kind    OutcomeKind
	Session SessionView
}

package engine

import (
	"sync"

	"github.com/rs/zerolog/log"

	"GameBot/model"
	"GameBot/repo"
)

// Engine is the quorum state machine. Every mutation of session state
// funnels through it: a single mutex serializes all operations, so a
// signup attempt observes membership, appends and evaluates quorum as
// one step. Telegram may redeliver updates; redelivered or otherwise
// stale signups degrade to an ignored outcome rather than an error.
type Engine struct {
	mu      sync.Mutex
	store   *repo.SessionStore
	catalog model.Catalog
	quorum  int
}

// New creates an engine finalizing sessions once an option collects
// quorum distinct participants.
func New(store *repo.SessionStore, catalog model.Catalog, quorum int) *Engine {
	return &Engine{
		store:   store,
		catalog: catalog,
		quorum:  quorum,
	}
}

// CreateSession opens a new session for the given scheduled time and
// returns a snapshot for rendering.
func (e *Engine) CreateSession(scheduledTime string) model.SessionView {
	e.mu.Lock()
	defer e.mu.Unlock()

	session := e.store.Create(scheduledTime)
	log.Info().
		Str("session_id", session.ID).
		Str("scheduled_time", scheduledTime).
		Msg("session created")
	return e.snapshot(session)
}

// AttemptSignup records participantID under optionID in the given
// session. It is a no-op (OutcomeIgnored) when the session is unknown
// or already finalized, the option is not in the catalog, or the
// participant already holds a slot under any option of the session.
// When the signup brings the option to quorum, the session finalizes:
// status flips, the winning option is recorded, and winning
// participants are removed from every other option.
func (e *Engine) AttemptSignup(sessionID, participantID, optionID string) model.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := e.store.Find(sessionID)
	if err != nil {
		log.Debug().Str("session_id", sessionID).Msg("signup for unknown session ignored")
		return model.Outcome{Kind: model.OutcomeIgnored}
	}
	if session.Status == model.StatusFinalized {
		log.Debug().Str("session_id", sessionID).Msg("signup for finalized session ignored")
		return model.Outcome{Kind: model.OutcomeIgnored}
	}
	if !e.catalog.Has(optionID) {
		log.Debug().
			Str("session_id", sessionID).
			Str("option_id", optionID).
			Msg("signup for unknown option ignored")
		return model.Outcome{Kind: model.OutcomeIgnored}
	}
	for _, participants := range session.Signups {
		for _, id := range participants {
			if id == participantID {
				log.Debug().
					Str("session_id", sessionID).
					Str("participant", participantID).
					Msg("duplicate signup ignored")
				return model.Outcome{Kind: model.OutcomeIgnored}
			}
		}
	}

	session.Signups[optionID] = append(session.Signups[optionID], participantID)

	if len(session.Signups[optionID]) < e.quorum {
		return model.Outcome{Kind: model.OutcomeUpdated, Session: e.snapshot(session)}
	}

	session.Status = model.StatusFinalized
	session.WinningOption = optionID
	e.reconcile(session)

	log.Info().
		Str("session_id", session.ID).
		Str("option_id", optionID).
		Int("players", len(session.Signups[optionID])).
		Msg("session finalized")
	return model.Outcome{Kind: model.OutcomeFinalized, Session: e.snapshot(session)}
}

// reconcile removes the winning option's participants from every other
// option. The pre-append membership check already keeps a participant
// under a single option, so this normally removes nothing; it stays as
// a safety net should that check ever be relaxed.
func (e *Engine) reconcile(session *model.Session) {
	winners := make(map[string]bool, len(session.Signups[session.WinningOption]))
	for _, id := range session.Signups[session.WinningOption] {
		winners[id] = true
	}
	for optionID, participants := range session.Signups {
		if optionID == session.WinningOption {
			continue
		}
		kept := participants[:0]
		for _, id := range participants {
			if !winners[id] {
				kept = append(kept, id)
			}
		}
		session.Signups[optionID] = kept
	}
}

// snapshot copies the session into a view safe to hand to renderers
// outside the engine lock, with options in catalog order.
func (e *Engine) snapshot(session *model.Session) model.SessionView {
	view := model.SessionView{
		ID:            session.ID,
		ScheduledTime: session.ScheduledTime,
		Status:        session.Status,
		WinningOption: session.WinningOption,
		Options:       make([]model.OptionView, 0, len(e.catalog)),
	}
	for _, opt := range e.catalog {
		participants := make([]string, len(session.Signups[opt.ID]))
		copy(participants, session.Signups[opt.ID])
		view.Options = append(view.Options, model.OptionView{
			ID:           opt.ID,
			Label:        opt.Label,
			Participants: participants,
		})
	}
	return view
}

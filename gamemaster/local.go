package gamemaster

import (
	"fmt"
	"sync"

	"duel/game"
	"duel/searcher"

	"github.com/rs/zerolog/log"
)

// Update is the single hand-off carrying the AI's reply to a human move.
type Update struct {
	Move  game.Move  // resolved move the AI played
	State game.State // independent copy of the state after the reply
}

// Session owns a live game between a caller (the presentation layer) and
// the built-in search player. The caller applies human moves through Play
// and receives the AI's reply through Updates; the search runs off the
// caller's goroutine against a snapshot, so the live state is never touched
// while a search is outstanding.
type Session struct {
	mu        sync.Mutex
	state     game.State
	search    *searcher.Minimax
	updateCh  chan Update
	searching bool
}

func NewSession(state game.State, depth int) *Session {
	return &Session{
		state:    state,
		search:   searcher.NewMinimax(depth),
		updateCh: make(chan Update, 1),
	}
}

// State returns an independent copy of the live state.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Updates delivers the AI's replies. The caller must receive each update
// before playing its next move; a reply that finds the previous update still
// unreceived is dropped with a warning.
func (s *Session) Updates() <-chan Update {
	return s.updateCh
}

// Reset abandons the current game and starts a fresh one of the given kind.
// It refuses while an AI reply is outstanding and discards any update the
// caller never received.
func (s *Session) Reset(kind string) error {
	state, err := game.NewState(kind)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.searching {
		return fmt.Errorf("reset: reply still pending")
	}
	select {
	case <-s.updateCh:
	default:
	}
	s.state = state
	return nil
}

// Play applies the human's move and starts the AI's reply search. It
// returns the resolved move actually applied: for the drop game this
// carries the gravity-decided landing row, and it is the move the caller
// must remember for any later undo.
func (s *Session) Play(move game.Move) (game.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searching {
		return game.Move{}, fmt.Errorf("%w: reply still pending", game.ErrInvalidMove)
	}
	if s.state.CurrentPlayer() != game.Human {
		return game.Move{}, fmt.Errorf("%w: not the human's turn", game.ErrInvalidMove)
	}

	resolved, err := s.state.Apply(move, game.Human)
	if err != nil {
		return game.Move{}, err
	}
	if s.state.IsTerminal() {
		return resolved, nil
	}

	s.searching = true
	go s.reply(s.state.Clone())
	return resolved, nil
}

func (s *Session) reply(snapshot game.State) {
	move, metric, ok := s.search.FindNextMove(snapshot, game.AI)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.searching = false }()

	if !ok {
		// The position was terminal after all; nothing to play
		return
	}

	resolved, err := s.state.Apply(move, game.AI)
	if err != nil {
		log.Warn().Err(err).Msg("AI reply rejected by state machine, aborting turn")
		return
	}

	log.Debug().Int("row", resolved.Row).Int("col", resolved.Col).
		Int("nodes", metric.Nodes).Dur("took", metric.Duration).
		Msg("AI replied")

	select {
	case s.updateCh <- Update{Move: resolved, State: s.state.Clone()}:
	default:
		log.Warn().Msg("dropping AI reply update, previous update never received")
	}
}

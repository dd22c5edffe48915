package session

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mfield/memorymatch/internal/dependencies/clock"
	"github.com/mfield/memorymatch/internal/dependencies/scheduler"
	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/services/scoring"
)

// Timer periods for the session's two scheduled tasks
const (
	TickInterval = time.Second            // elapsed-time accumulation
	SettleDelay  = 700 * time.Millisecond // pause before a mismatched pair flips back
)

// Outcome describes what a selection did to the session
type Outcome string

const (
	OutcomeFlipped  Outcome = "flipped"  // first card of a pair turned face up
	OutcomeMatch    Outcome = "match"    // pair matched
	OutcomeMismatch Outcome = "mismatch" // pair mismatched; settle delay running
	OutcomeWon      Outcome = "won"      // final pair matched
)

// Session is the state machine over card selections for one deck. It is
// created per deck and replaced, never reused, on restart. Selections and
// the session's own timer tasks may run on different goroutines, so all
// state lives behind one mutex; a discarded session rejects everything,
// which keeps stale timer callbacks from mutating a superseded game.
type Session struct {
	mu sync.Mutex

	deck       model.Deck
	cfg        model.DifficultyConfig
	difficulty model.Difficulty
	theme      model.ThemeName

	state   model.SessionState
	first   int // deck index of the first selection, -1 if none
	second  int // deck index of the second selection, -1 if none
	moves   int
	matched int
	elapsed int
	started bool

	discarded  bool
	tickTask   scheduler.Task
	settleTask scheduler.Task

	clock     clock.Clock
	scheduler scheduler.Scheduler
	logger    *slog.Logger
}

// New creates a session in the Idle state over a freshly built deck
func New(
	deck model.Deck,
	difficulty model.Difficulty,
	theme model.ThemeName,
	cfg model.DifficultyConfig,
	clock clock.Clock,
	sched scheduler.Scheduler,
	logger *slog.Logger,
) *Session {
	return &Session{
		deck:       deck,
		cfg:        cfg,
		difficulty: difficulty,
		theme:      theme,
		state:      model.SessionStateIdle,
		first:      -1,
		second:     -1,
		clock:      clock,
		scheduler:  sched,
		logger:     logger,
	}
}

// Select flips the card with the given id. The first selection of the
// whole session also starts the elapsed-time ticker.
func (s *Session) Select(cardID int) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discarded {
		return "", model.ErrSessionDiscarded
	}

	switch s.state {
	case model.SessionStateWon:
		return "", model.ErrSessionWon
	case model.SessionStateEvaluating:
		return "", model.ErrBoardLocked
	}

	if cardID < 0 || cardID >= len(s.deck) {
		return "", model.ErrCardNotFound
	}
	if s.deck[cardID].Matched {
		return "", model.ErrCardMatched
	}
	if s.state == model.SessionStateOneSelected && cardID == s.first {
		return "", model.ErrCardSelected
	}

	if !s.started {
		s.started = true
		s.tickTask = s.scheduler.Every(TickInterval, s.tick)
	}

	if s.state == model.SessionStateIdle {
		s.first = cardID
		s.state = model.SessionStateOneSelected
		return OutcomeFlipped, nil
	}

	// Second card of the pair
	s.second = cardID
	s.moves++

	if s.deck[s.first].Token == s.deck[s.second].Token {
		s.deck[s.first].Matched = true
		s.deck[s.second].Matched = true
		s.matched++
		s.first, s.second = -1, -1

		if s.matched == s.cfg.PairCount {
			s.winLocked()
			return OutcomeWon, nil
		}

		s.state = model.SessionStateIdle
		return OutcomeMatch, nil
	}

	// Mismatch: hold both cards face up for the settle delay, rejecting
	// selections until the delay flips them back
	s.state = model.SessionStateEvaluating
	s.settleTask = s.scheduler.AfterFunc(SettleDelay, s.settle)
	return OutcomeMismatch, nil
}

// winLocked finalizes the session; callers hold s.mu
func (s *Session) winLocked() {
	s.state = model.SessionStateWon
	if s.tickTask != nil {
		s.tickTask.Cancel()
	}
	s.logger.Info("session won",
		slog.String("difficulty", string(s.difficulty)),
		slog.Int("moves", s.moves),
		slog.Int("elapsed_seconds", s.elapsed),
		slog.Int("score", scoring.Score(s.cfg, s.matched, s.moves, s.elapsed)),
	)
}

// settle flips a mismatched pair back; runs on the scheduler goroutine
func (s *Session) settle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discarded || s.state != model.SessionStateEvaluating {
		return
	}
	s.first, s.second = -1, -1
	s.state = model.SessionStateIdle
}

// tick accumulates elapsed time; runs on the scheduler goroutine
func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discarded || s.state == model.SessionStateWon {
		return
	}
	s.elapsed++
}

// Discard abandons the session and cancels its outstanding timer tasks.
// Every operation on a discarded session is rejected.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discarded = true
	if s.tickTask != nil {
		s.tickTask.Cancel()
	}
	if s.settleTask != nil {
		s.settleTask.Cancel()
	}
}

// Snapshot is a consistent read-only view of the session
type Snapshot struct {
	State           model.SessionState
	Deck            model.Deck
	FirstSelection  int // deck index, -1 if none
	SecondSelection int // deck index, -1 if none
	Moves           int
	MatchedPairs    int
	PairCount       int
	ElapsedSeconds  int
	Accuracy        float64
	Score           int
}

// Snapshot returns the current session view. Accuracy and score are
// recomputed from the counters on every call.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	deckCopy := make(model.Deck, len(s.deck))
	copy(deckCopy, s.deck)

	return Snapshot{
		State:           s.state,
		Deck:            deckCopy,
		FirstSelection:  s.first,
		SecondSelection: s.second,
		Moves:           s.moves,
		MatchedPairs:    s.matched,
		PairCount:       s.cfg.PairCount,
		ElapsedSeconds:  s.elapsed,
		Accuracy:        scoring.Accuracy(s.matched, s.moves),
		Score:           scoring.Score(s.cfg, s.matched, s.moves, s.elapsed),
	}
}

// Record emits the leaderboard record for a finished session. An empty or
// blank name falls back to the default player name.
func (s *Session) Record(name string) model.LeaderboardRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultPlayerName
	}

	return model.LeaderboardRecord{
		Name:       name,
		Score:      scoring.Score(s.cfg, s.matched, s.moves, s.elapsed),
		Time:       s.elapsed,
		Moves:      s.moves,
		Accuracy:   scoring.Accuracy(s.matched, s.moves),
		Difficulty: s.difficulty,
		Theme:      s.theme,
		CreatedAt:  s.clock.Now(),
	}
}

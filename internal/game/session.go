package game

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNotPlaying       = errors.New("game is not in progress")
	ErrUnknownPiece     = errors.New("piece is not in the current set")
	ErrNoSelection      = errors.New("no piece selected")
	ErrIllegalPlacement = errors.New("piece does not fit there")
)

type RunState int

const (
	StateMenu RunState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

type Stats struct {
	Score     int
	Lines     int
	Level     int
	PlayTime  time.Duration
	HighScore int
	// NewRecord is set when the finished run raised the high score.
	NewRecord bool
}

// PlaceResult describes what one successful placement did.
type PlaceResult struct {
	Lines     int
	Points    int
	Refilled  bool
	GameOver  bool
	NewRecord bool
}

// Snapshot is a deep copy of the session, safe to read without locking.
type Snapshot struct {
	State    RunState
	Board    *Board
	Pieces   []*Piece
	Selected string
	Stats    Stats
	Rules    Rules
}

// Piece returns the piece with the given id, or nil.
func (s Snapshot) Piece(id string) *Piece {
	for _, p := range s.Pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Session owns the mutable state of one player's run and applies every
// action as a single locked transition.
type Session struct {
	mu       sync.Mutex
	rules    Rules
	gen      *PieceGenerator
	store    HighScoreStore
	log      *zap.Logger
	state    RunState
	board    *Board
	pieces   []*Piece
	selected string
	stats    Stats
}

// NewSession creates a session sitting on the menu. The stored high score
// is read once here; a read failure is logged and treated as 0.
func NewSession(rules Rules, gen *PieceGenerator, store HighScoreStore, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gen == nil {
		gen = NewPieceGenerator(time.Now().UnixNano())
	}
	rules = rules.normalized()
	s := &Session{
		rules: rules,
		gen:   gen,
		store: store,
		log:   logger,
		state: StateMenu,
		board: NewBoard(rules.Rows, rules.Cols),
		stats: Stats{Level: 1},
	}
	best, err := LoadHighScore(store)
	if err != nil {
		logger.Warn("load high score", zap.Error(err))
	}
	s.stats.HighScore = best
	return s
}

func (s *Session) State() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Rules() Rules {
	return s.rules
}

// Start begins a fresh run from any state. The high score carries over.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = NewBoard(s.rules.Rows, s.rules.Cols)
	s.pieces = s.gen.NextSet(s.rules.SetSize)
	s.selected = ""
	s.stats = Stats{
		Level:     1,
		HighScore: s.stats.HighScore,
	}
	s.state = StatePlaying
	s.log.Info("game started",
		zap.Int("rows", s.rules.Rows),
		zap.Int("cols", s.rules.Cols),
		zap.Int("set_size", s.rules.SetSize),
	)

	if IsGameOver(s.board, s.pieces) {
		s.finish()
	}
}

func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return false
	}
	s.state = StatePaused
	s.log.Debug("paused", zap.Duration("play_time", s.stats.PlayTime))
	return true
}

func (s *Session) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePaused {
		return false
	}
	s.state = StatePlaying
	s.log.Debug("resumed")
	return true
}

// TogglePause flips between playing and paused; other states ignore it.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	default:
		return false
	}
	s.log.Debug("pause toggled", zap.Stringer("state", s.state))
	return true
}

// ReturnToMenu leaves a paused or finished run.
func (s *Session) ReturnToMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePaused && s.state != StateGameOver {
		return false
	}
	s.state = StateMenu
	s.selected = ""
	return true
}

// Select marks a piece of the current set as the one to place next.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return ErrNotPlaying
	}
	if s.indexOf(id) < 0 {
		return ErrUnknownPiece
	}
	s.selected = id
	return nil
}

// SelectIndex selects the i-th piece of the current set.
func (s *Session) SelectIndex(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return ErrNotPlaying
	}
	if i < 0 || i >= len(s.pieces) {
		return ErrUnknownPiece
	}
	s.selected = s.pieces[i].ID
	return nil
}

// Selected returns the selected piece id, or "" when none.
func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// PlaceSelected places the selected piece at pos.
func (s *Session) PlaceSelected(pos Position) (PlaceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return PlaceResult{}, ErrNotPlaying
	}
	if s.selected == "" {
		return PlaceResult{}, ErrNoSelection
	}
	return s.place(s.selected, pos)
}

// Place puts the piece with the given id at pos, clears full lines,
// scores them, refills an exhausted set and checks for game over.
func (s *Session) Place(id string, pos Position) (PlaceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return PlaceResult{}, ErrNotPlaying
	}
	return s.place(id, pos)
}

// place must be called with s.mu held and the session playing.
func (s *Session) place(id string, pos Position) (PlaceResult, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return PlaceResult{}, ErrUnknownPiece
	}
	p := s.pieces[idx]
	if !s.board.CanPlace(p, pos) {
		return PlaceResult{}, ErrIllegalPlacement
	}

	cleared, lines := s.board.Place(p, pos).ClearFullLines()
	s.board = cleared

	var res PlaceResult
	res.Lines = lines
	res.Points = ScoreForLines(lines, s.rules.PointsPerLine)
	s.stats.Lines += lines
	s.stats.Score += res.Points
	s.stats.Level = CalculateLevel(s.stats.Lines, s.rules.LinesPerLevel)

	s.pieces = append(s.pieces[:idx:idx], s.pieces[idx+1:]...)
	if s.selected == id {
		s.selected = ""
	}
	if len(s.pieces) == 0 {
		s.pieces = s.gen.NextSet(s.rules.SetSize)
		res.Refilled = true
	}

	if lines > 0 {
		s.log.Debug("lines cleared",
			zap.Int("lines", lines),
			zap.Int("score", s.stats.Score),
			zap.Int("level", s.stats.Level),
		)
	}

	if IsGameOver(s.board, s.pieces) {
		s.finish()
		res.GameOver = true
		res.NewRecord = s.stats.NewRecord
	}
	return res, nil
}

// finish must be called with s.mu held.
func (s *Session) finish() {
	s.state = StateGameOver
	s.selected = ""
	s.log.Info("game over",
		zap.Int("score", s.stats.Score),
		zap.Int("lines", s.stats.Lines),
		zap.Int("level", s.stats.Level),
		zap.Duration("play_time", s.stats.PlayTime),
	)

	prev := s.stats.HighScore
	best, promoted, err := SaveHighScore(s.store, s.stats.Score)
	if err != nil {
		s.log.Warn("save high score", zap.Error(err), zap.Int("score", s.stats.Score))
		if s.stats.Score > prev {
			s.stats.HighScore = s.stats.Score
			s.stats.NewRecord = true
		}
		return
	}
	if s.store == nil {
		promoted = s.stats.Score > prev
		best = max(prev, s.stats.Score)
	}
	s.stats.HighScore = best
	s.stats.NewRecord = promoted
	if promoted {
		s.log.Info("new high score", zap.Int("score", s.stats.Score), zap.Int("previous", prev))
	}
}

// Tick accrues play time while a run is in progress.
func (s *Session) Tick(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying || d <= 0 {
		return
	}
	s.stats.PlayTime += d
}

func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	pieces := make([]*Piece, len(s.pieces))
	for i, p := range s.pieces {
		cp := *p
		pieces[i] = &cp
	}
	return Snapshot{
		State:    s.state,
		Board:    s.board.Clone(),
		Pieces:   pieces,
		Selected: s.selected,
		Stats:    s.stats,
		Rules:    s.rules,
	}
}

func (s *Session) indexOf(id string) int {
	for i, p := range s.pieces {
		if p.ID == id {
			return i
		}
	}
	return -1
}

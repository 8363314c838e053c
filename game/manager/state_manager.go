package manager

import (
	"caneat/game/types"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Listener receives the notifications the UI layer reacts to.
type Listener interface {
	OnScoreChange(score int)
	OnStatusChange(status types.GameStatus)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Score  func(score int)
	Status func(status types.GameStatus)
}

func (f ListenerFuncs) OnScoreChange(score int) {
	if f.Score != nil {
		f.Score(score)
	}
}

func (f ListenerFuncs) OnStatusChange(status types.GameStatus) {
	if f.Status != nil {
		f.Status(status)
	}
}

// Resetter is re-initialised on every entry into PLAYING.
type Resetter interface {
	Reset()
}

// StateManager is the round lifecycle: START -> PLAYING -> {GAMEOVER, WIN},
// and back to PLAYING on restart. Session stats live in memory only.
type StateManager struct {
	status       types.GameStatus
	resetter     Resetter
	listeners    []Listener
	logger       *log.Logger
	roundID      string
	score        int
	highScore    int
	scoreHistory []int
}

func NewStateManager(resetter Resetter, logger *log.Logger) *StateManager {
	return &StateManager{
		status:       types.StatusStart,
		resetter:     resetter,
		logger:       logger,
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) AddListener(l Listener) {
	sm.listeners = append(sm.listeners, l)
}

func (sm *StateManager) Status() types.GameStatus {
	return sm.status
}

func (sm *StateManager) IsPlaying() bool {
	return sm.status == types.StatusPlaying
}

// RoundID identifies the current round in logs. Empty before the first start.
func (sm *StateManager) RoundID() string {
	return sm.roundID
}

// Start and Restart both enter PLAYING.
func (sm *StateManager) Start() bool {
	return sm.SetStatus(types.StatusPlaying)
}

func (sm *StateManager) Restart() bool {
	return sm.SetStatus(types.StatusPlaying)
}

// SetStatus applies a transition and reports whether it was accepted.
// GAMEOVER and WIN can only be reached from PLAYING.
func (sm *StateManager) SetStatus(next types.GameStatus) bool {
	prev := sm.status
	switch next {
	case types.StatusStart:
	case types.StatusPlaying:
		if prev == types.StatusPlaying {
			return false
		}
	case types.StatusGameOver, types.StatusWin:
		if prev != types.StatusPlaying {
			return false
		}
	default:
		return false
	}

	sm.status = next
	switch next {
	case types.StatusPlaying:
		sm.roundID = uuid.NewString()
		sm.logger.Info("Round started", "round", sm.roundID)
		sm.resetter.Reset()
	case types.StatusStart:
		sm.resetter.Reset()
	case types.StatusGameOver, types.StatusWin:
		sm.AddToHistory(sm.score)
		sm.logger.Info("Round ended", "round", sm.roundID, "status", next, "score", sm.score)
	}

	for _, l := range sm.listeners {
		l.OnStatusChange(next)
	}
	return true
}

// UpdateScore records the score and forwards it to listeners.
func (sm *StateManager) UpdateScore(score int) {
	sm.score = score
	if score > sm.highScore {
		sm.highScore = score
	}
	for _, l := range sm.listeners {
		l.OnScoreChange(score)
	}
}

func (sm *StateManager) AddToHistory(score int) {
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

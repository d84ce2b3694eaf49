package runner

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session holds the scoreboard of the current run.
// Best outlives sessions but not the Session value itself.
type Session struct {
	Phase    Phase
	Score    int
	Best     int
	Ordinary int // Ordinary coins collected this session
	Premium  int // Premium coins collected this session
	Ticks    int // Ticks spent playing this session
	Won      bool
}

// Begin starts a fresh session. Best is kept.
func (s *Session) Begin() {
	s.Phase = PhasePlaying
	s.Score = 0
	s.Ordinary = 0
	s.Premium = 0
	s.Ticks = 0
	s.Won = false
}

// End moves the session to game over and updates the best score.
func (s *Session) End(won bool) {
	s.Phase = PhaseGameOver
	s.Won = won
	if s.Score > s.Best {
		s.Best = s.Score
	}
}

// Apply adds a collision outcome to the score and coin counts.
func (s *Session) Apply(out CollisionOutcome) {
	s.Score += out.Points
	s.Ordinary += out.Ordinary
	s.Premium += out.Premium
}

// Accrue awards the time-based point when the interval elapses.
func (s *Session) Accrue(interval int) {
	if interval > 0 && s.Ticks%interval == 0 {
		s.Score++
	}
}

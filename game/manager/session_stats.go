package manager

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// MaxRecords caps how many finished rounds a session remembers.
const MaxRecords = 200

// RoundRecord is the outcome of one finished round.
type RoundRecord struct {
	RoundID   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Level     int
	Ticks     int
	Cause     CollisionType
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats keeps the rounds played since the program started. It is
// not persisted; only the high score is.
type SessionStats struct {
	Rounds []RoundRecord
	played int
}

// StatsSummary is what the HUD shows about the session.
type StatsSummary struct {
	GamesPlayed     int
	MaxScore        int
	AverageScore    float64
	MedianScore     float64
	AverageDuration time.Duration
	RecentScores    []int
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		Rounds: make([]RoundRecord, 0),
	}
}

// AddRound records a finished round, dropping the oldest beyond MaxRecords.
func (s *SessionStats) AddRound(r RoundRecord) {
	s.played++
	s.Rounds = append(s.Rounds, r)
	if len(s.Rounds) > MaxRecords {
		s.Rounds = s.Rounds[len(s.Rounds)-MaxRecords:]
	}
}

// GamesPlayed counts every round, including ones no longer retained.
func (s *SessionStats) GamesPlayed() int {
	return s.played
}

func (s *SessionStats) AverageScore() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.Rounds {
		total += r.Score
	}
	return float64(total) / float64(len(s.Rounds))
}

func (s *SessionStats) MedianScore() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	scores := s.scores()
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *SessionStats) MaxScore() int {
	best := 0
	for _, r := range s.Rounds {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// AverageDuration is the mean wall-clock length of the retained rounds.
func (s *SessionStats) AverageDuration() time.Duration {
	if len(s.Rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range s.Rounds {
		total += r.Duration()
	}
	return total / time.Duration(len(s.Rounds))
}

func (s *SessionStats) Summary() StatsSummary {
	return StatsSummary{
		GamesPlayed:     s.GamesPlayed(),
		MaxScore:        s.MaxScore(),
		AverageScore:    s.AverageScore(),
		MedianScore:     s.MedianScore(),
		AverageDuration: s.AverageDuration(),
		RecentScores:    s.scores(),
	}
}

func (s *SessionStats) scores() []int {
	scores := make([]int, len(s.Rounds))
	for i, r := range s.Rounds {
		scores[i] = r.Score
	}
	return scores
}

package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// HighScores is the persisted record, stored as {"highscore": N}.
type HighScores struct {
	HighScore int `json:"highscore"`
}

// HighScoreStore reads and writes HighScores as a JSON file. It never
// reports failures to its caller: a missing or unreadable file loads as
// zero and a failed write is only logged.
type HighScoreStore struct {
	path   string
	logger *log.Logger
}

func NewHighScoreStore(path string, logger *log.Logger) *HighScoreStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &HighScoreStore{
		path:   path,
		logger: logger,
	}
}

func (hs *HighScoreStore) Path() string {
	return hs.path
}

func (hs *HighScoreStore) Load() HighScores {
	scores, err := hs.load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			hs.logger.Printf("Warning: ignoring high score file %s: %v", hs.path, err)
		}
		return HighScores{}
	}
	return scores
}

func (hs *HighScoreStore) load() (HighScores, error) {
	data, err := os.ReadFile(hs.path)
	if err != nil {
		return HighScores{}, err
	}

	var scores HighScores
	if err := json.Unmarshal(data, &scores); err != nil {
		return HighScores{}, fmt.Errorf("decode %s: %w", hs.path, err)
	}
	if scores.HighScore < 0 {
		return HighScores{}, fmt.Errorf("negative high score %d", scores.HighScore)
	}
	return scores, nil
}

func (hs *HighScoreStore) Save(scores HighScores) {
	if err := hs.save(scores); err != nil {
		hs.logger.Printf("Warning: could not save high score: %v", err)
	}
}

func (hs *HighScoreStore) save(scores HighScores) error {
	if dir := filepath.Dir(hs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}

	return os.WriteFile(hs.path, data, 0644)
}

package game

// HighScoreStore persists the single best score across sessions.
type HighScoreStore interface {
	// Get returns the stored best, or 0 when nothing was stored yet.
	Get() (int, error)
	// SetIfGreater stores score only when it beats the current best and
	// reports whether it did. Ties never overwrite.
	SetIfGreater(score int) (bool, error)
}

// LoadHighScore reads the best score. A nil store reads as 0.
func LoadHighScore(store HighScoreStore) (int, error) {
	if store == nil {
		return 0, nil
	}
	return store.Get()
}

// SaveHighScore offers a finished run's score to the store and returns
// the best score afterwards along with whether score became the new best.
func SaveHighScore(store HighScoreStore, score int) (best int, promoted bool, err error) {
	if store == nil {
		return score, false, nil
	}
	promoted, err = store.SetIfGreater(score)
	if err != nil {
		return 0, false, err
	}
	best, err = store.Get()
	if err != nil {
		return 0, promoted, err
	}
	return best, promoted, nil
}

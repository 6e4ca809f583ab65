package service

import (
	"kidquest_backend/internal/model"
)

// AchievementMetrics are the aggregate counters badge rules are evaluated
// against.
type AchievementMetrics struct {
	FinishedAttempts int `json:"finishedAttempts"`
	TotalStars       int `json:"totalStars"`
	LoginDays        int `json:"loginDays"`
	CorrectAnswers   int `json:"correctAnswers"`
	TotalAttempts    int `json:"totalAttempts"`
	PerfectGames     int `json:"perfectGames"`
}

// ComputeAchievementMetrics reduces a child's raw attempt history to
// counters. Level-bound attempts are deduplicated to the single best finished
// attempt per level; no-level attempts count individually. The result does
// not depend on the order of the input slice.
func ComputeAchievementMetrics(attempts []model.Attempt) AchievementMetrics {
	var m AchievementMetrics

	days := make(map[string]struct{})
	levelsSeen := make(map[uint]struct{})
	bestPerLevel := make(map[uint]model.Attempt)
	var counted []model.Attempt

	for _, a := range attempts {
		days[a.CreatedAt.UTC().Format("2006-01-02")] = struct{}{}

		if a.LevelID == nil {
			m.TotalAttempts++
			if a.IsFinished {
				counted = append(counted, a)
				m.FinishedAttempts++
			}
			continue
		}

		levelsSeen[*a.LevelID] = struct{}{}
		if !a.IsFinished {
			continue
		}
		best, ok := bestPerLevel[*a.LevelID]
		if !ok || betterAttempt(a, best) {
			bestPerLevel[*a.LevelID] = a
		}
	}

	m.TotalAttempts += len(levelsSeen)
	m.FinishedAttempts += len(bestPerLevel)
	m.LoginDays = len(days)

	for _, a := range bestPerLevel {
		counted = append(counted, a)
	}
	for _, a := range counted {
		m.TotalStars += a.Score
		m.CorrectAnswers += a.CorrectCount
		if a.TotalCount > 0 && a.CorrectCount == a.TotalCount {
			m.PerfectGames++
		}
	}

	return m
}

// betterAttempt ranks by higher score, then higher correctCount. Remaining
// ties break on earlier creation then lower id so the winner is stable
// regardless of input order.
func betterAttempt(a, b model.Attempt) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.CorrectCount != b.CorrectCount {
		return a.CorrectCount > b.CorrectCount
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

package service

import (
	"testing"
	"time"

	"kidquest_backend/internal/model"
)

func levelAttempt(id uint, levelID uint, day int, finished bool, score, correct, total int) model.Attempt {
	lid := levelID
	a := model.Attempt{
		LevelID:      &lid,
		Score:        score,
		CorrectCount: correct,
		TotalCount:   total,
		IsFinished:   finished,
	}
	a.ID = id
	a.CreatedAt = time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC)
	return a
}

func freeAttempt(id uint, day int, finished bool, score, correct, total int) model.Attempt {
	a := model.Attempt{
		Score:        score,
		CorrectCount: correct,
		TotalCount:   total,
		IsFinished:   finished,
	}
	a.ID = id
	a.CreatedAt = time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC)
	return a
}

func TestComputeAchievementMetricsBestPerLevel(t *testing.T) {
	attempts := []model.Attempt{
		levelAttempt(1, 11, 1, true, 1, 1, 3),
		levelAttempt(2, 11, 2, true, 3, 2, 3),
	}

	m := ComputeAchievementMetrics(attempts)

	if m.FinishedAttempts != 1 {
		t.Errorf("FinishedAttempts = %d, want 1", m.FinishedAttempts)
	}
	if m.TotalStars != 3 {
		t.Errorf("TotalStars = %d, want 3 (only the better attempt)", m.TotalStars)
	}
	if m.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", m.CorrectAnswers)
	}
	if m.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1 (one distinct level)", m.TotalAttempts)
	}
	if m.LoginDays != 2 {
		t.Errorf("LoginDays = %d, want 2", m.LoginDays)
	}
}

func TestComputeAchievementMetricsNoLevelAttempts(t *testing.T) {
	attempts := []model.Attempt{
		freeAttempt(1, 1, true, 5, 5, 5),
		freeAttempt(2, 1, false, 0, 0, 0),
	}

	m := ComputeAchievementMetrics(attempts)

	if m.TotalAttempts != 2 {
		t.Errorf("TotalAttempts = %d, want 2", m.TotalAttempts)
	}
	if m.FinishedAttempts != 1 {
		t.Errorf("FinishedAttempts = %d, want 1", m.FinishedAttempts)
	}
	if m.TotalStars != 5 {
		t.Errorf("TotalStars = %d, want 5", m.TotalStars)
	}
	if m.PerfectGames != 1 {
		t.Errorf("PerfectGames = %d, want 1", m.PerfectGames)
	}
}

func TestComputeAchievementMetricsUnfinishedLevelStillCounts(t *testing.T) {
	attempts := []model.Attempt{
		levelAttempt(1, 20, 1, false, 0, 0, 0),
		levelAttempt(2, 20, 1, false, 0, 0, 0),
	}

	m := ComputeAchievementMetrics(attempts)

	if m.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1 (distinct level, no dedup per try)", m.TotalAttempts)
	}
	if m.FinishedAttempts != 0 {
		t.Errorf("FinishedAttempts = %d, want 0", m.FinishedAttempts)
	}
	if m.TotalStars != 0 {
		t.Errorf("TotalStars = %d, want 0", m.TotalStars)
	}
}

func TestComputeAchievementMetricsOrderIndependent(t *testing.T) {
	attempts := []model.Attempt{
		levelAttempt(1, 11, 1, true, 3, 2, 3),
		levelAttempt(2, 11, 2, true, 3, 2, 2), // same score/correct, perfect
		levelAttempt(3, 12, 3, true, 1, 1, 1),
		freeAttempt(4, 3, true, 2, 2, 4),
	}
	reversed := make([]model.Attempt, len(attempts))
	for i := range attempts {
		reversed[i] = attempts[len(attempts)-1-i]
	}

	forward := ComputeAchievementMetrics(attempts)
	backward := ComputeAchievementMetrics(reversed)

	if forward != backward {
		t.Errorf("metrics depend on input order: %+v vs %+v", forward, backward)
	}
}

func TestComputeAchievementMetricsPerfectGames(t *testing.T) {
	attempts := []model.Attempt{
		levelAttempt(1, 11, 1, true, 30, 3, 3),
		levelAttempt(2, 12, 1, true, 20, 2, 3),
		freeAttempt(3, 2, true, 10, 1, 1),
		freeAttempt(4, 2, true, 0, 0, 0), // zero totalCount is never perfect
	}

	m := ComputeAchievementMetrics(attempts)

	if m.PerfectGames != 2 {
		t.Errorf("PerfectGames = %d, want 2", m.PerfectGames)
	}
	if m.FinishedAttempts != 4 {
		t.Errorf("FinishedAttempts = %d, want 4", m.FinishedAttempts)
	}
	if m.TotalStars != 60 {
		t.Errorf("TotalStars = %d, want 60", m.TotalStars)
	}
}

package service

import "testing"

func TestParseBadgeCode(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantMetric string
		wantTarget int
		wantNil    bool
	}{
		{name: "finished alias", code: "FINISHED_5", wantMetric: MetricFinishedGames, wantTarget: 5},
		{name: "long finished alias", code: "FINISHED_GAMES_10", wantMetric: MetricFinishedGames, wantTarget: 10},
		{name: "stars", code: "STARS_100", wantMetric: MetricTotalStars, wantTarget: 100},
		{name: "total stars", code: "TOTAL_STARS_100", wantMetric: MetricTotalStars, wantTarget: 100},
		{name: "login days", code: "LOGIN_DAYS_7", wantMetric: MetricLoginDays, wantTarget: 7},
		{name: "daily logins alias", code: "DAILY_LOGINS_7", wantMetric: MetricLoginDays, wantTarget: 7},
		{name: "correct answers", code: "CORRECT_ANSWERS_50", wantMetric: MetricCorrectAnswers, wantTarget: 50},
		{name: "attempts", code: "ATTEMPTS_20", wantMetric: MetricTotalAttempts, wantTarget: 20},
		{name: "perfect games", code: "PERFECT_GAMES_3", wantMetric: MetricPerfectGames, wantTarget: 3},
		{name: "lowercase and spaces", code: "  finished_5  ", wantMetric: MetricFinishedGames, wantTarget: 5},
		{name: "unknown alias", code: "MYSTERY_5", wantNil: true},
		{name: "no threshold", code: "MYSTERY", wantNil: true},
		{name: "zero threshold", code: "FINISHED_0", wantNil: true},
		{name: "empty", code: "", wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ParseBadgeCode(tt.code)
			if tt.wantNil {
				if rule != nil {
					t.Fatalf("ParseBadgeCode(%q) = %+v, want nil", tt.code, rule)
				}
				return
			}
			if rule == nil {
				t.Fatalf("ParseBadgeCode(%q) = nil, want rule", tt.code)
			}
			if rule.MetricKey != tt.wantMetric {
				t.Errorf("MetricKey = %q, want %q", rule.MetricKey, tt.wantMetric)
			}
			if rule.Target != tt.wantTarget {
				t.Errorf("Target = %d, want %d", rule.Target, tt.wantTarget)
			}
			if rule.MetricLabel == "" {
				t.Error("MetricLabel is empty")
			}
		})
	}
}

func TestBadgeRuleProgress(t *testing.T) {
	rule := ParseBadgeCode("FINISHED_5")
	if rule == nil {
		t.Fatal("rule did not parse")
	}

	earnedMetrics := AchievementMetrics{FinishedAttempts: 5}
	current := rule.CurrentValue(earnedMetrics)
	if !rule.Earned(current) {
		t.Error("5/5 should be earned")
	}
	if got := rule.ProgressPercent(current); got != 100 {
		t.Errorf("ProgressPercent(5) = %d, want 100", got)
	}

	partialMetrics := AchievementMetrics{FinishedAttempts: 2}
	current = rule.CurrentValue(partialMetrics)
	if rule.Earned(current) {
		t.Error("2/5 should not be earned")
	}
	if got := rule.ProgressPercent(current); got != 40 {
		t.Errorf("ProgressPercent(2) = %d, want 40", got)
	}

	overMetrics := AchievementMetrics{FinishedAttempts: 12}
	current = rule.CurrentValue(overMetrics)
	if got := rule.ProgressPercent(current); got != 100 {
		t.Errorf("ProgressPercent(12) = %d, want clamped 100", got)
	}
}

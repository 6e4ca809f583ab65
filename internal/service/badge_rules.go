package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Canonical metric keys badge codes resolve to.
const (
	MetricFinishedGames  = "finished_games"
	MetricTotalStars     = "total_stars"
	MetricLoginDays      = "login_days"
	MetricCorrectAnswers = "correct_answers"
	MetricTotalAttempts  = "total_attempts"
	MetricPerfectGames   = "perfect_games"
)

// metricAliases maps the human-authored prefixes of badge codes onto
// canonical metric keys.
var metricAliases = map[string]string{
	"FINISHED":        MetricFinishedGames,
	"FINISHED_GAMES":  MetricFinishedGames,
	"STARS":           MetricTotalStars,
	"TOTAL_STARS":     MetricTotalStars,
	"LOGIN_DAYS":      MetricLoginDays,
	"DAILY_LOGINS":    MetricLoginDays,
	"CORRECT_ANSWERS": MetricCorrectAnswers,
	"ATTEMPTS":        MetricTotalAttempts,
	"TOTAL_ATTEMPTS":  MetricTotalAttempts,
	"PERFECT_GAMES":   MetricPerfectGames,
}

var metricLabels = map[string]string{
	MetricFinishedGames:  "Завершені ігри",
	MetricTotalStars:     "Зібрані зірки",
	MetricLoginDays:      "Дні гри",
	MetricCorrectAnswers: "Правильні відповіді",
	MetricTotalAttempts:  "Спроби",
	MetricPerfectGames:   "Ідеальні ігри",
}

var badgeCodePattern = regexp.MustCompile(`^(.+)_(\d+)$`)

// BadgeRule is the parsed form of a badge code.
type BadgeRule struct {
	MetricKey   string
	MetricLabel string
	Target      int
}

// ParseBadgeCode parses codes of the form <METRIC_ALIAS>_<DIGITS>. Unknown
// aliases, unparseable codes and non-positive thresholds yield no rule: the
// badge is displayed as never earned, with no progress.
func ParseBadgeCode(code string) *BadgeRule {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	matches := badgeCodePattern.FindStringSubmatch(normalized)
	if matches == nil {
		return nil
	}

	metricKey, ok := metricAliases[matches[1]]
	if !ok {
		return nil
	}

	target, err := strconv.Atoi(matches[2])
	if err != nil || target <= 0 {
		return nil
	}

	return &BadgeRule{
		MetricKey:   metricKey,
		MetricLabel: metricLabels[metricKey],
		Target:      target,
	}
}

// CurrentValue extracts the rule's metric from computed metrics.
func (r *BadgeRule) CurrentValue(m AchievementMetrics) int {
	switch r.MetricKey {
	case MetricFinishedGames:
		return m.FinishedAttempts
	case MetricTotalStars:
		return m.TotalStars
	case MetricLoginDays:
		return m.LoginDays
	case MetricCorrectAnswers:
		return m.CorrectAnswers
	case MetricTotalAttempts:
		return m.TotalAttempts
	case MetricPerfectGames:
		return m.PerfectGames
	default:
		return 0
	}
}

// ProgressPercent is clamp(round(current/target*100), 0, 100).
func (r *BadgeRule) ProgressPercent(current int) int {
	percent := int(math.Round(float64(current) / float64(r.Target) * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Earned reports whether the metric reached the threshold.
func (r *BadgeRule) Earned(current int) bool {
	return current >= r.Target
}

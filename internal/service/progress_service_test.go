package service

import "testing"

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		name        string
		completed   bool
		levelNumber int
		maxUnlocked int
		want        string
	}{
		{name: "below max is unlocked", completed: false, levelNumber: 1, maxUnlocked: 2, want: LevelStateUnlocked},
		{name: "at max is unlocked", completed: false, levelNumber: 2, maxUnlocked: 2, want: LevelStateUnlocked},
		{name: "above max is locked", completed: false, levelNumber: 3, maxUnlocked: 2, want: LevelStateLocked},
		{name: "completed wins over unlocked", completed: true, levelNumber: 1, maxUnlocked: 2, want: LevelStateCompleted},
		{name: "completed wins over locked", completed: true, levelNumber: 5, maxUnlocked: 2, want: LevelStateCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLevel(tt.completed, tt.levelNumber, tt.maxUnlocked); got != tt.want {
				t.Errorf("classifyLevel(%v, %d, %d) = %q, want %q",
					tt.completed, tt.levelNumber, tt.maxUnlocked, got, tt.want)
			}
		})
	}
}

func TestNextUnlockedLevel(t *testing.T) {
	tests := []struct {
		name        string
		currentMax  int
		levelNumber int
		wantTarget  int
		wantChanged bool
	}{
		{name: "advance past current max", currentMax: 2, levelNumber: 3, wantTarget: 4, wantChanged: true},
		{name: "first level unlocks second", currentMax: 1, levelNumber: 1, wantTarget: 2, wantChanged: true},
		{name: "already unlocked is a no-op", currentMax: 4, levelNumber: 3, wantTarget: 4, wantChanged: false},
		{name: "replay of old level is a no-op", currentMax: 10, levelNumber: 2, wantTarget: 3, wantChanged: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, changed := nextUnlockedLevel(tt.currentMax, tt.levelNumber)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if changed && target != tt.wantTarget {
				t.Errorf("target = %d, want %d", target, tt.wantTarget)
			}
		})
	}
}

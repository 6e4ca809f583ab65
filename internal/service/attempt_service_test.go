package service

import (
	"testing"

	"kidquest_backend/internal/util"
)

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

func TestValidateStartRequest(t *testing.T) {
	valid := StartAttemptRequest{ChildProfileID: 1, GameID: 2, Difficulty: 1}

	tests := []struct {
		name     string
		mutate   func(*StartAttemptRequest)
		wantKind util.ErrorKind
	}{
		{name: "valid minimal", mutate: func(r *StartAttemptRequest) {}},
		{name: "valid with level number", mutate: func(r *StartAttemptRequest) { r.Level = intPtr(2) }},
		{name: "valid with level id", mutate: func(r *StartAttemptRequest) { r.LevelID = uintPtr(7) }},
		{
			name:     "missing child",
			mutate:   func(r *StartAttemptRequest) { r.ChildProfileID = 0 },
			wantKind: util.KindValidation,
		},
		{
			name:     "missing game",
			mutate:   func(r *StartAttemptRequest) { r.GameID = 0 },
			wantKind: util.KindValidation,
		},
		{
			name:     "zero difficulty",
			mutate:   func(r *StartAttemptRequest) { r.Difficulty = 0 },
			wantKind: util.KindValidation,
		},
		{
			name:     "negative difficulty",
			mutate:   func(r *StartAttemptRequest) { r.Difficulty = -2 },
			wantKind: util.KindValidation,
		},
		{
			name:     "non-positive level number",
			mutate:   func(r *StartAttemptRequest) { r.Level = intPtr(0) },
			wantKind: util.KindValidation,
		},
		{
			name: "level and levelId together",
			mutate: func(r *StartAttemptRequest) {
				r.Level = intPtr(1)
				r.LevelID = uintPtr(1)
			},
			wantKind: util.KindValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := validateStartRequest(req)
			if tt.wantKind == 0 {
				if err != nil {
					t.Errorf("validateStartRequest() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("validateStartRequest() = nil, want error")
			}
			if util.KindOf(err) != tt.wantKind {
				t.Errorf("error kind = %v, want %v", util.KindOf(err), tt.wantKind)
			}
		})
	}
}

func TestValidateStartRequestFailsFastOrder(t *testing.T) {
	// With several violations the first one in validation order wins: the
	// missing child id is reported before the contradictory level fields.
	req := StartAttemptRequest{
		GameID:     1,
		Difficulty: 1,
		Level:      intPtr(1),
		LevelID:    uintPtr(1),
	}
	req.ChildProfileID = 0

	err := validateStartRequest(req)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "childProfileId is required" {
		t.Errorf("got %q, want the childProfileId violation first", err.Error())
	}
}

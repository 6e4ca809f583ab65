package service

import (
	"encoding/json"
	"testing"
)

func check(t *testing.T, userJSON, correctJSON string) bool {
	t.Helper()
	var user interface{}
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		t.Fatalf("bad user fixture: %v", err)
	}
	ok, err := CheckAnswer(user, json.RawMessage(correctJSON))
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	return ok
}

func TestCheckAnswerScalarsAndObjects(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{name: "equal strings", user: `"сонце"`, correct: `"сонце"`, want: true},
		{name: "different strings", user: `"сонце"`, correct: `"місяць"`, want: false},
		{name: "equal numbers", user: `7`, correct: `7`, want: true},
		{name: "number vs string", user: `7`, correct: `"7"`, want: false},
		{name: "bool vs number", user: `true`, correct: `1`, want: false},
		{name: "null equals null", user: `null`, correct: `null`, want: true},
		{name: "object key order ignored", user: `{"a":1,"b":[1,2]}`, correct: `{"b":[1,2],"a":1}`, want: true},
		{name: "missing key", user: `{"a":1}`, correct: `{"a":1,"b":2}`, want: false},
		{name: "extra key", user: `{"a":1,"b":2,"c":3}`, correct: `{"a":1,"b":2}`, want: false},
		{name: "nested mismatch", user: `{"a":{"x":1}}`, correct: `{"a":{"x":2}}`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := check(t, tt.user, tt.correct); got != tt.want {
				t.Errorf("CheckAnswer(%s, %s) = %v, want %v", tt.user, tt.correct, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerArraysOrdered(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{name: "same order", user: `[1,2,3]`, correct: `[1,2,3]`, want: true},
		{name: "different order", user: `[3,2,1]`, correct: `[1,2,3]`, want: false},
		{name: "length mismatch", user: `[1,2]`, correct: `[1,2,3]`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := check(t, tt.user, tt.correct); got != tt.want {
				t.Errorf("CheckAnswer(%s, %s) = %v, want %v", tt.user, tt.correct, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerPairsMultiset(t *testing.T) {
	correct := `{"pairs":[{"item":"Лев","target":"Тварини"},{"item":"Яблуко","target":"Фрукти"}]}`

	tests := []struct {
		name string
		user string
		want bool
	}{
		{
			name: "same order",
			user: `{"pairs":[{"item":"Лев","target":"Тварини"},{"item":"Яблуко","target":"Фрукти"}]}`,
			want: true,
		},
		{
			name: "reversed order",
			user: `{"pairs":[{"item":"Яблуко","target":"Фрукти"},{"item":"Лев","target":"Тварини"}]}`,
			want: true,
		},
		{
			name: "one target wrong",
			user: `{"pairs":[{"item":"Яблуко","target":"Тварини"},{"item":"Лев","target":"Фрукти"}]}`,
			want: false,
		},
		{
			name: "missing pair",
			user: `{"pairs":[{"item":"Лев","target":"Тварини"}]}`,
			want: false,
		},
		{
			name: "duplicate pair does not cover two",
			user: `{"pairs":[{"item":"Лев","target":"Тварини"},{"item":"Лев","target":"Тварини"}]}`,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := check(t, tt.user, correct); got != tt.want {
				t.Errorf("CheckAnswer(%s) = %v, want %v", tt.user, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerPairsOnlySpecialInsideObjects(t *testing.T) {
	// A bare top-level array keeps ordered semantics even if it holds
	// item/target records.
	user := `[{"item":"Б","target":"2"},{"item":"А","target":"1"}]`
	correct := `[{"item":"А","target":"1"},{"item":"Б","target":"2"}]`
	if check(t, user, correct) {
		t.Error("top-level array should be order-sensitive")
	}
}

package service

import (
	"encoding/json"
)

// pairsKey marks drag-and-drop matching answers: a "pairs" array of
// {item, target} records is order-independent, every other array is ordered.
const pairsKey = "pairs"

// CheckAnswer judges a submitted answer against the stored correct answer of
// a task version. The submitted value comes straight from request binding, so
// it is round-tripped through JSON first to normalize numbers and maps.
func CheckAnswer(userAnswer interface{}, correctRaw json.RawMessage) (bool, error) {
	normalized, err := normalizeJSONValue(userAnswer)
	if err != nil {
		return false, err
	}

	var correct interface{}
	if err := json.Unmarshal(correctRaw, &correct); err != nil {
		return false, err
	}

	return answersEqual(normalized, correct), nil
}

func normalizeJSONValue(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// answersEqual is a recursive structural comparison over decoded JSON values:
// nil/bool/float64/string/[]interface{}/map[string]interface{}.
func answersEqual(user, correct interface{}) bool {
	switch c := correct.(type) {
	case map[string]interface{}:
		u, ok := user.(map[string]interface{})
		if !ok || len(u) != len(c) {
			return false
		}
		for key, cv := range c {
			uv, exists := u[key]
			if !exists {
				return false
			}
			if key == pairsKey {
				cl, clOK := cv.([]interface{})
				ul, ulOK := uv.([]interface{})
				if clOK && ulOK {
					if !pairsEqual(ul, cl) {
						return false
					}
					continue
				}
			}
			if !answersEqual(uv, cv) {
				return false
			}
		}
		return true
	case []interface{}:
		u, ok := user.([]interface{})
		if !ok || len(u) != len(c) {
			return false
		}
		for i := range c {
			if !answersEqual(u[i], c[i]) {
				return false
			}
		}
		return true
	case nil:
		return user == nil
	case bool:
		u, ok := user.(bool)
		return ok && u == c
	case float64:
		u, ok := user.(float64)
		return ok && u == c
	case string:
		u, ok := user.(string)
		return ok && u == c
	default:
		return false
	}
}

// pairsEqual compares two pair lists as multisets: each record must match
// exactly one unused record on the other side.
func pairsEqual(user, correct []interface{}) bool {
	if len(user) != len(correct) {
		return false
	}
	used := make([]bool, len(correct))
	for _, uv := range user {
		matched := false
		for i, cv := range correct {
			if used[i] {
				continue
			}
			if answersEqual(uv, cv) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

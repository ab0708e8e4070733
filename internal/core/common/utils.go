package common

import (
	"encoding/json"
	"fmt"
)

// ParseJSON cleans and unmarshals a JSON value from an LLM response into T.
// It handles common quirks like surrounding markdown fences or extra prose by
// scanning for the outermost object or array delimiters.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	jsonStr, err := extractJSON(response)
	if err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, jsonStr)
	}

	return result, nil
}

func extractJSON(s string) (string, error) {
	// Find whichever of '{' or '[' comes first, and pair it with the last
	// matching closer.
	start := -1
	var open, closer byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			open = s[i]
			break
		}
	}
	if start == -1 {
		return "", fmt.Errorf("no JSON value found in response")
	}
	if open == '{' {
		closer = '}'
	} else {
		closer = ']'
	}

	for i := len(s) - 1; i > start; i-- {
		if s[i] == closer {
			return s[start : i+1], nil
		}
	}
	return "", fmt.Errorf("unterminated JSON value in response (missing %q)", string(closer))
}

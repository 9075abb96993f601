package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAnswers reads a comma-separated answer list into question index →
// option index. Each entry is an option letter (A-D, any case) or a 1-based
// option number. Blank entries leave the question unanswered.
func parseAnswers(s string) (map[int]int, error) {
	answers := make(map[int]int)
	if strings.TrimSpace(s) == "" {
		return answers, nil
	}
	for i, raw := range strings.Split(s, ",") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		idx, err := parseAnswer(tok)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		answers[i] = idx
	}
	return answers, nil
}

func parseAnswer(tok string) (int, error) {
	if n, err := strconv.Atoi(tok); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("option number must be at least 1, got %d", n)
		}
		return n - 1, nil
	}
	if len(tok) == 1 {
		c := strings.ToUpper(tok)[0]
		if c >= 'A' && c <= 'Z' {
			return int(c - 'A'), nil
		}
	}
	return 0, fmt.Errorf("expected an option letter or number, got %q", tok)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// closest returns the candidate nearest to input when it is close enough
// to be a plausible typo.
func closest(input string, candidates []string) (string, bool) {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(input), c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(best)/2) {
		return "", false
	}
	return best, true
}

// choiceHint renders "Did you mean X? Supported: a, b, c".
func choiceHint(input string, candidates []string) string {
	supported := "Supported: " + strings.Join(candidates, ", ")
	if match, ok := closest(input, candidates); ok {
		return fmt.Sprintf("Did you mean %q? %s", match, supported)
	}
	return supported
}

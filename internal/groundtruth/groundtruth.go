// Package groundtruth loads the ground-truth JSON used to score a
// batch of check runs against known-correct verdicts, in the shape
// the original lab's test harness produced per test case.
package groundtruth

import (
	"encoding/json"
	"fmt"
	"os"

	"tsverify/internal/driver"
)

// Entry is the expected verdict for each policy on one test file.
type Entry struct {
	Runtime driver.Verdict `json:"runtime"`
	Defuse  driver.Verdict `json:"defuse"`
	Taint   driver.Verdict `json:"taint"`
}

// Truth maps a test case name (file stem) to its expected verdicts.
type Truth map[string]Entry

// Load reads a ground-truth JSON file.
func Load(path string) (Truth, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ground truth %s: %w", path, err)
	}
	var t Truth
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse ground truth %s: %w", path, err)
	}
	return t, nil
}

func (e Entry) ForPolicy(p driver.Policy) driver.Verdict {
	switch p {
	case driver.RuntimePolicy:
		return e.Runtime
	case driver.DefusePolicy:
		return e.Defuse
	case driver.TaintPolicy:
		return e.Taint
	default:
		return driver.Unknown
	}
}

// Score implements the partial-credit scoring table: an exact match
// scores 1.0; predicting Unknown when the truth is Violates scores
// 0.75 (a cautious abstention on a real bug); predicting Unknown when
// the truth is Satisfies scores 0.25 (a cautious abstention on a
// non-issue, worth less since it's the less useful direction to be
// unsure in); anything else scores 0.
func Score(predicted, truth driver.Verdict) float64 {
	if predicted == truth {
		return 1.0
	}
	if predicted == driver.Unknown {
		if truth == driver.Violates {
			return 0.75
		}
		if truth == driver.Satisfies {
			return 0.25
		}
	}
	return 0.0
}

// Report is the scored outcome for one (test case, policy) pair.
type Report struct {
	Case      string
	Policy    driver.Policy
	Predicted driver.Verdict
	Truth     driver.Verdict
	Points    float64
}

// Summarize totals points scored against the maximum possible.
func Summarize(reports []Report) (points, max float64) {
	for _, r := range reports {
		points += r.Points
		max += 1.0
	}
	return points, max
}

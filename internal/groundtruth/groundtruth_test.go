package groundtruth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"tsverify/internal/driver"
	"tsverify/internal/groundtruth"
)

func TestScoreExactMatch(t *testing.T) {
	assert.Equal(t, 1.0, groundtruth.Score(driver.Satisfies, driver.Satisfies))
	assert.Equal(t, 1.0, groundtruth.Score(driver.Violates, driver.Violates))
	assert.Equal(t, 1.0, groundtruth.Score(driver.Unknown, driver.Unknown))
}

func TestScoreCautiousAbstention(t *testing.T) {
	assert.Equal(t, 0.75, groundtruth.Score(driver.Unknown, driver.Violates))
	assert.Equal(t, 0.25, groundtruth.Score(driver.Unknown, driver.Satisfies))
}

func TestScoreWrongAnswer(t *testing.T) {
	assert.Equal(t, 0.0, groundtruth.Score(driver.Satisfies, driver.Violates))
	assert.Equal(t, 0.0, groundtruth.Score(driver.Violates, driver.Satisfies))
}

func TestEntryForPolicy(t *testing.T) {
	e := groundtruth.Entry{Runtime: driver.Satisfies, Defuse: driver.Violates, Taint: driver.Unknown}
	assert.Equal(t, driver.Satisfies, e.ForPolicy(driver.RuntimePolicy))
	assert.Equal(t, driver.Violates, e.ForPolicy(driver.DefusePolicy))
	assert.Equal(t, driver.Unknown, e.ForPolicy(driver.TaintPolicy))
}

func TestLoadParsesGroundTruthFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truth.json")
	data := `{"prog1": {"runtime": "Satisfies", "defuse": "Violates", "taint": "Unknown"}}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	truth, err := groundtruth.Load(path)
	assert.NoError(t, err)
	entry, ok := truth["prog1"]
	assert.True(t, ok)
	assert.Equal(t, driver.Satisfies, entry.Runtime)
	assert.Equal(t, driver.Violates, entry.Defuse)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := groundtruth.Load("/nonexistent/path/truth.json")
	assert.Error(t, err)
}

func TestSummarizeTotalsPoints(t *testing.T) {
	reports := []groundtruth.Report{
		{Points: 1.0}, {Points: 0.75}, {Points: 0.0},
	}
	points, max := groundtruth.Summarize(reports)
	assert.Equal(t, 1.75, points)
	assert.Equal(t, 3.0, max)
}

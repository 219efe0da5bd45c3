package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_IdenticalDocuments(t *testing.T) {
	text := "Senior engineer building pipelines with Python, SQL, and Snowflake on AWS."

	result := Score(text, text)

	assert.Equal(t, 100.0, result.TechnicalMatch)
	assert.Equal(t, 100.0, result.KeywordMatch)
	assert.Equal(t, 100.0, result.OverallScore)
	assert.Empty(t, result.MissingTechnical)
	assert.Empty(t, result.MissingKeywords)
}

func TestScore_EmptyTarget(t *testing.T) {
	result := Score("Python engineer with Kubernetes experience", "")

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, 0.0, result.TechnicalMatch)
	assert.Equal(t, 0.0, result.KeywordMatch)
}

func TestScore_TargetWithoutExtractableTerms(t *testing.T) {
	// Short stop-worded text yields no keywords and no technical terms.
	result := Score("Python engineer", "the and or in at to")

	assert.Equal(t, 0.0, result.OverallScore)
}

func TestScore_BoundsForArbitraryInputs(t *testing.T) {
	inputs := []struct{ candidate, target string }{
		{"", ""},
		{"", "python"},
		{"python", ""},
		{"!!! ???", "123 456"},
		{strings.Repeat("python sql aws ", 2000), "python"},
		{"short", strings.Repeat("generative ai docker terraform ", 1000)},
	}

	for _, in := range inputs {
		result := Score(in.candidate, in.target)
		assert.GreaterOrEqual(t, result.OverallScore, 0.0)
		assert.LessOrEqual(t, result.OverallScore, 100.0)
		assert.GreaterOrEqual(t, result.TechnicalMatch, 0.0)
		assert.LessOrEqual(t, result.TechnicalMatch, 100.0)
		assert.GreaterOrEqual(t, result.KeywordMatch, 0.0)
		assert.LessOrEqual(t, result.KeywordMatch, 100.0)
	}
}

func TestScore_PartialTechnicalOverlap(t *testing.T) {
	candidate := "Developed data pipelines using Python and SQL"
	target := "Looking for Snowflake, Databricks, Python"

	before := Score(candidate, target)

	// Target technical terms: snowflake, databricks, python. Candidate
	// covers only python: 1/3.
	require.Equal(t, 3, before.Counts.TargetTechnical)
	assert.InDelta(t, 33.33, before.TechnicalMatch, 0.01)
	assert.Equal(t, []string{"python"}, before.MatchedTechnical)
	assert.ElementsMatch(t, []string{"databricks", "snowflake"}, before.MissingTechnical)

	// A rewrite that adds the two missing platforms without dropping Python
	// must raise the technical match and grow the matched set by exactly those.
	rewritten := candidate + " with Snowflake and Databricks"
	after := Score(rewritten, target)

	assert.Greater(t, after.TechnicalMatch, before.TechnicalMatch)
	assert.Equal(t, 100.0, after.TechnicalMatch)
	assert.ElementsMatch(t, []string{"databricks", "python", "snowflake"}, after.MatchedTechnical)
	assert.Empty(t, after.MissingTechnical)
}

func TestScore_RequirementsComeFromTarget(t *testing.T) {
	result := Score("resume text", "5 years of data engineering required")

	assert.Contains(t, result.Requirements, "data engineering required")
}

func TestSummary_RendersScoresAndMissing(t *testing.T) {
	result := Score("Python developer", "Python, Snowflake, Databricks and 4 years of data engineering")

	summary := Summary(result)

	assert.Contains(t, summary, "Overall Match Score")
	assert.Contains(t, summary, "Technical Skills Match")
	assert.Contains(t, summary, "Missing Technical Skills")
	assert.Contains(t, summary, "snowflake")
	assert.Contains(t, summary, "Experience Requirements Found")
}

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airesume/tailor/internal/analysis"
	"github.com/airesume/tailor/internal/types"
)

const sampleResume = `Jane Smith
jane@example.com | 555-0100

Professional Summary
Senior data engineer with 12 years building batch and streaming pipelines.

Technical Skills
Python, SQL, Snowflake, Airflow, Docker

Experience
Xoriant Corporation - Senior Data Engineer (2019-present)
- Developed data pipelines using Python and SQL
- Built orchestration with Airflow

Atos Syntel Ltd - Data Engineer (2014-2019)
- Maintained ETL workloads

Education
Master of Computer Applications, State University, 2008`

const sampleJob = `We need a data platform engineer.
Requirements: Snowflake, Databricks, Python. 5 years of data engineering.`

func buildSample(t *testing.T, limit int) *types.RewriteContract {
	t.Helper()
	match := analysis.Score(sampleResume, sampleJob)
	return Build(types.NewCandidate(sampleResume), types.NewTarget(sampleJob), match, limit, DefaultBulletDelta)
}

func TestBuild_PopulatesContract(t *testing.T) {
	c := buildSample(t, 2)

	assert.Equal(t, 2, c.EditableZoneLimit)
	assert.Equal(t, DefaultBulletDelta, c.BulletDeltaBound)
	assert.Equal(t, OutputDelimiter, c.OutputDelimiter)
	assert.Equal(t, FrozenSections, c.FrozenSections)
	assert.Contains(t, c.MissingTechnical, "databricks")
}

func TestBuild_ClampsEditableZoneLimit(t *testing.T) {
	for _, limit := range []int{0, -3} {
		c := buildSample(t, limit)
		assert.Equal(t, 1, c.EditableZoneLimit)
	}
}

func TestBuild_BulletDelta(t *testing.T) {
	match := analysis.Score(sampleResume, sampleJob)

	c := Build(types.NewCandidate(sampleResume), types.NewTarget(sampleJob), match, 2, 2)
	assert.Equal(t, 2, c.BulletDeltaBound)
	assert.Contains(t, RenderInstructions(c), "max +/-2")

	// A delta below 1 falls back to the default bound.
	c = Build(types.NewCandidate(sampleResume), types.NewTarget(sampleJob), match, 2, 0)
	assert.Equal(t, DefaultBulletDelta, c.BulletDeltaBound)
}

func TestExtractFrozenEntities_GenericPass(t *testing.T) {
	entities := ExtractFrozenEntities(sampleResume)

	assert.Contains(t, entities, "Xoriant Corporation")
	assert.Contains(t, entities, "Atos Syntel Ltd")
	assert.Contains(t, entities, "Master of Computer Applications")
	assert.Contains(t, entities, "Technical Skills")
	assert.Contains(t, entities, "Education")
	// No hardcoded proper nouns: an entity absent from the document is never required.
	assert.NotContains(t, entities, "ANZ Bank")
}

func TestExtractFrozenEntities_EmptyDocument(t *testing.T) {
	assert.Empty(t, ExtractFrozenEntities(""))
}

func TestRenderInstructions_StatesTheContract(t *testing.T) {
	c := buildSample(t, 2)

	rendered := RenderInstructions(c)

	// The candidate and target documents are embedded in full.
	require.Contains(t, rendered, "Developed data pipelines using Python and SQL")
	require.Contains(t, rendered, "data platform engineer")

	// Frozen sections are enumerated by name.
	for _, section := range FrozenSections {
		assert.Contains(t, rendered, section)
	}

	// The editable zone, fabrication ban, verb policy, and framing are stated.
	assert.Contains(t, rendered, "2 most recent")
	assert.Contains(t, rendered, "NO TECHNOLOGY FABRICATION")
	assert.Contains(t, rendered, "Architected")
	assert.Contains(t, rendered, OutputDelimiter)

	// Required entities from the generic pass are restated.
	assert.Contains(t, rendered, "Xoriant Corporation")

	// Missing technical skills feed the prompt.
	assert.Contains(t, rendered, "databricks")
}

func TestSystemInstructions_NonEmpty(t *testing.T) {
	s := SystemInstructions()
	assert.Contains(t, s, "resume")
}

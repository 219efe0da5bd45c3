package analysis

import "regexp"

// termCategory is one entry in the curated technical-term catalog.
type termCategory struct {
	name    string
	pattern *regexp.Regexp
}

// technicalCatalog is the fixed, ordered catalog of category patterns run
// against normalized text. It is compiled once at process start and never
// mutated, so extraction logic can be tested and extended without touching
// scattered literals.
var technicalCatalog = []termCategory{
	{
		name:    "languages",
		pattern: regexp.MustCompile(`\b(python|java|javascript|typescript|c\+\+|c#|ruby|go|rust|swift|kotlin|scala|r|matlab|sql|nosql)\b`),
	},
	{
		name:    "frameworks",
		pattern: regexp.MustCompile(`\b(react|angular|vue|django|flask|fastapi|spring|express|node\.?js|tensorflow|pytorch|keras|pandas|numpy|scikit-learn)\b`),
	},
	{
		name:    "cloud_devops",
		pattern: regexp.MustCompile(`\b(aws|azure|gcp|docker|kubernetes|jenkins|gitlab|github|terraform|ansible|circleci)\b`),
	},
	{
		name:    "databases",
		pattern: regexp.MustCompile(`\b(postgresql|mysql|mongodb|redis|cassandra|dynamodb|snowflake|bigquery|redshift|databricks)\b`),
	},
	{
		name:    "ai_ml_data",
		pattern: regexp.MustCompile(`\b(machine learning|deep learning|nlp|computer vision|genai|generative ai|llm|transformer|bert|gpt|mlops|data science|analytics)\b`),
	},
	{
		name:    "tools",
		pattern: regexp.MustCompile(`\b(git|jira|confluence|slack|agile|scrum|ci/cd|rest api|graphql|microservices|kafka|spark|hadoop|airflow)\b`),
	},
	{
		name:    "certifications",
		pattern: regexp.MustCompile(`\b(aws certified|azure certified|pmp|scrum master|agile|devops|tdd|bdd)\b`),
	},
}

// multiWordTerms are canonical phrases scanned by substring containment in
// normalized text. Found phrases are stored underscore-joined. The catalog
// is intentionally redundant with the category patterns above; the set
// union absorbs duplicates.
var multiWordTerms = []string{
	"machine learning", "deep learning", "natural language processing",
	"computer vision", "data science", "data engineering", "software engineering",
	"full stack", "backend", "frontend", "devops", "mlops", "generative ai",
	"artificial intelligence", "big data", "cloud computing", "web development",
	"mobile development", "rest api", "graphql", "microservices", "ci/cd",
	"agile methodology", "scrum", "test driven development",
}

// stopWords are excluded from generic keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "a": {}, "an": {}, "is": {},
	"was": {}, "are": {}, "were": {}, "been": {}, "be": {}, "have": {},
	"has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "should": {}, "could": {}, "may": {}, "might": {},
	"can": {}, "this": {}, "that": {}, "these": {}, "those": {}, "i": {},
	"you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"what": {}, "which": {}, "who": {}, "when": {}, "where": {}, "why": {},
	"how": {},
}

// requirementStopWords are phrases discarded by the requirement extractor.
var requirementStopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "with": {}, "in": {},
}

// minGenericTokenLen is the exclusive length threshold for generic keywords.
const minGenericTokenLen = 3

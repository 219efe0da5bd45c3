// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents settings that can be loaded from a JSON file and
// overridden by environment variables or CLI flags. All fields are optional;
// missing values use defaults.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume file (txt/docx/pdf)
	Job    string `json:"job,omitempty"`    // Path to job description file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Tailoring knobs
	Model         string  `json:"model,omitempty"`          // Generation model ID
	MaxProjects   int     `json:"max_projects,omitempty"`   // Most recent roles the rewrite may touch
	BulletDelta   int     `json:"bullet_delta,omitempty"`   // Allowed bullet count change per role
	TargetScore   float64 `json:"target_score,omitempty"`   // Iterative mode stop threshold
	MaxIterations int     `json:"max_iterations,omitempty"` // Iterative mode bound

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseBrowser bool   `json:"use_browser,omitempty"` // Headless browser fallback for SPA job boards
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information

	// Server
	Port      int    `json:"port,omitempty"`       // HTTP listen port
	JWTSecret string `json:"jwt_secret,omitempty"` // Enables bearer auth when set
}

// Defaults mirror the tailoring knobs' built-in values.
const (
	DefaultMaxProjects   = 2
	DefaultBulletDelta   = 1
	DefaultTargetScore   = 85.0
	DefaultMaxIterations = 2
	DefaultPort          = 8080
)

// ConfigurationError represents invalid or missing configuration
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, &ConfigurationError{Message: "config path is empty"}
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &ConfigurationError{Message: "failed to get current directory", Cause: err}
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigurationError{Message: "failed to parse config JSON", Cause: err}
	}

	return &cfg, nil
}

// Merge overlays the set fields of override onto c. Used to let CLI flags
// take precedence over values loaded from a config file.
func (c *Config) Merge(override *Config) {
	if override == nil {
		return
	}
	if override.Resume != "" {
		c.Resume = override.Resume
	}
	if override.Job != "" {
		c.Job = override.Job
	}
	if override.JobURL != "" {
		c.JobURL = override.JobURL
	}
	if override.Model != "" {
		c.Model = override.Model
	}
	if override.MaxProjects != 0 {
		c.MaxProjects = override.MaxProjects
	}
	if override.BulletDelta != 0 {
		c.BulletDelta = override.BulletDelta
	}
	if override.TargetScore != 0 {
		c.TargetScore = override.TargetScore
	}
	if override.MaxIterations != 0 {
		c.MaxIterations = override.MaxIterations
	}
	if override.APIKey != "" {
		c.APIKey = override.APIKey
	}
	if override.UseBrowser {
		c.UseBrowser = true
	}
	if override.Verbose {
		c.Verbose = true
	}
	if override.Port != 0 {
		c.Port = override.Port
	}
	if override.JWTSecret != "" {
		c.JWTSecret = override.JWTSecret
	}
}

// FromEnv fills unset fields from environment variables. Call after
// godotenv.Load so a .env file participates.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = os.Getenv("TAILOR_MODEL")
	}
	if c.JWTSecret == "" {
		c.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = port
		}
	}
}

// ApplyDefaults fills remaining zero fields with built-in defaults.
func (c *Config) ApplyDefaults() {
	if c.MaxProjects == 0 {
		c.MaxProjects = DefaultMaxProjects
	}
	if c.BulletDelta == 0 {
		c.BulletDelta = DefaultBulletDelta
	}
	if c.TargetScore == 0 {
		c.TargetScore = DefaultTargetScore
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate checks ranges and mutually exclusive fields.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return &ConfigurationError{Message: "'job' and 'job_url' are mutually exclusive"}
	}
	if c.MaxProjects < 0 {
		return &ConfigurationError{Message: "'max_projects' must be non-negative"}
	}
	if c.MaxIterations < 0 {
		return &ConfigurationError{Message: "'max_iterations' must be non-negative"}
	}
	if c.TargetScore < 0 || c.TargetScore > 100 {
		return &ConfigurationError{Message: "'target_score' must be within [0, 100]"}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return &ConfigurationError{Message: fmt.Sprintf("resume file not found: %s", c.Resume)}
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return &ConfigurationError{Message: fmt.Sprintf("job file not found: %s", c.Job)}
		}
	}
	return nil
}

// RequireAPIKey fails fast when generation work is requested without a key.
// Scoring-only commands never call this.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return &ConfigurationError{
			Message: "GEMINI_API_KEY not set; provide it via environment, .env file, or config",
		}
	}
	return nil
}

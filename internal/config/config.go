// Package config reads studypal settings from STUDYPAL_* environment
// variables, optionally seeded from a .env file in the working directory.
package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/engine"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings.
type Config struct {
	// DBPath selects the SQLite content database. Empty means the embedded
	// corpus is used.
	DBPath string
	// CorpusDir is a directory of subject YAML files to load instead of the
	// embedded corpus, and the default source for `studypal seed`.
	CorpusDir string
	HTTPAddr  string

	LogUseCases bool

	Seed               int64
	Clusters           int
	Suggestions        int
	QuizSize           int
	TestFraction       float64
	ConfidenceMargin   float64
	ComplexityScale    domain.ComplexityScale
	ComplexityStrength float64
}

// DefaultConfig returns the settings used when no variable is set.
func DefaultConfig() Config {
	ec := engine.DefaultConfig()
	return Config{
		HTTPAddr:           ":8080",
		Seed:               ec.Seed,
		Clusters:           ec.Clusters,
		Suggestions:        ec.Suggestions,
		QuizSize:           ec.QuizSize,
		TestFraction:       ec.TestFraction,
		ConfidenceMargin:   ec.ConfidenceMargin,
		ComplexityScale:    ec.ComplexityScale,
		ComplexityStrength: ec.ComplexityStrength,
	}
}

// LoadConfig reads configuration from the environment, falling back to
// defaults for unset or unparsable values. A .env file, when present,
// fills variables that are not already set.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if v := os.Getenv("STUDYPAL_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STUDYPAL_CORPUS_DIR"); v != "" {
		cfg.CorpusDir = v
	}
	if v := os.Getenv("STUDYPAL_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("STUDYPAL_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STUDYPAL_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	applyPositiveInt(&cfg.Clusters, "STUDYPAL_CLUSTERS")
	applyPositiveInt(&cfg.Suggestions, "STUDYPAL_SUGGESTIONS")
	if v := os.Getenv("STUDYPAL_QUIZ_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.QuizSize = n
		}
	}
	if v := os.Getenv("STUDYPAL_TEST_FRACTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f < 1 {
			cfg.TestFraction = f
		}
	}
	if v := os.Getenv("STUDYPAL_CONFIDENCE_MARGIN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 0.5 {
			cfg.ConfidenceMargin = f
		}
	}
	if v := os.Getenv("STUDYPAL_COMPLEXITY_SCALE"); v != "" {
		if s, err := domain.ParseComplexityScale(v); err == nil {
			cfg.ComplexityScale = s
		}
	}
	if v := os.Getenv("STUDYPAL_COMPLEXITY_STRENGTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.ComplexityStrength = f
		}
	}

	return cfg
}

// Engine returns the engine settings carried by c.
func (c Config) Engine() engine.Config {
	return engine.Config{
		Seed:               c.Seed,
		Clusters:           c.Clusters,
		Suggestions:        c.Suggestions,
		QuizSize:           c.QuizSize,
		TestFraction:       c.TestFraction,
		ConfidenceMargin:   c.ConfidenceMargin,
		ComplexityScale:    c.ComplexityScale,
		ComplexityStrength: c.ComplexityStrength,
	}
}

func applyPositiveInt(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}

package config

import (
	"testing"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_MatchesEngineDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, engine.DefaultConfig(), cfg.Engine())
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DBPath)
	assert.False(t, cfg.LogUseCases)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STUDYPAL_DB", "/tmp/studypal.db")
	t.Setenv("STUDYPAL_CORPUS_DIR", "/tmp/corpus")
	t.Setenv("STUDYPAL_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("STUDYPAL_LOG_USE_CASES", "true")
	t.Setenv("STUDYPAL_SEED", "7")
	t.Setenv("STUDYPAL_CLUSTERS", "3")
	t.Setenv("STUDYPAL_SUGGESTIONS", "2")
	t.Setenv("STUDYPAL_QUIZ_SIZE", "0")
	t.Setenv("STUDYPAL_TEST_FRACTION", "0.25")
	t.Setenv("STUDYPAL_CONFIDENCE_MARGIN", "0.2")
	t.Setenv("STUDYPAL_COMPLEXITY_SCALE", "Linear")
	t.Setenv("STUDYPAL_COMPLEXITY_STRENGTH", "1")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/studypal.db", cfg.DBPath)
	assert.Equal(t, "/tmp/corpus", cfg.CorpusDir)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
	assert.True(t, cfg.LogUseCases)

	ec := cfg.Engine()
	assert.Equal(t, int64(7), ec.Seed)
	assert.Equal(t, 3, ec.Clusters)
	assert.Equal(t, 2, ec.Suggestions)
	assert.Equal(t, 0, ec.QuizSize)
	assert.InDelta(t, 0.25, ec.TestFraction, 1e-12)
	assert.InDelta(t, 0.2, ec.ConfidenceMargin, 1e-12)
	assert.Equal(t, domain.ComplexityLinear, ec.ComplexityScale)
	assert.InDelta(t, 1.0, ec.ComplexityStrength, 1e-12)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("STUDYPAL_SEED", "forty-two")
	t.Setenv("STUDYPAL_CLUSTERS", "0")
	t.Setenv("STUDYPAL_SUGGESTIONS", "-1")
	t.Setenv("STUDYPAL_QUIZ_SIZE", "-5")
	t.Setenv("STUDYPAL_TEST_FRACTION", "1.5")
	t.Setenv("STUDYPAL_CONFIDENCE_MARGIN", "0.9")
	t.Setenv("STUDYPAL_COMPLEXITY_SCALE", "cubic")
	t.Setenv("STUDYPAL_COMPLEXITY_STRENGTH", "-2")
	t.Setenv("STUDYPAL_LOG_USE_CASES", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
}

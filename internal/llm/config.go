package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation call being made.
type TaskType string

const (
	// TaskAnswer is the primary question-answering call.
	TaskAnswer TaskType = "answer"
	// TaskRepair is the one-shot repair re-send after a failed validation.
	TaskRepair TaskType = "repair"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The LLM is
// disabled by default; enabling it requires an API key.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash-lite",
		TimeoutMs:  20000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAnswer: {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 20000},
			TaskRepair: {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables, falling
// back to defaults for any unset values. GEMINI_API_KEY is honored as a
// fallback for the key so existing setups keep working.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MAJEL_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MAJEL_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MAJEL_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("MAJEL_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MAJEL_GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("MAJEL_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("MAJEL_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAnswer, "MAJEL_LLM_ANSWER_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRepair, "MAJEL_LLM_REPAIR_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

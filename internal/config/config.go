package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "FACTSCANNER_CONFIG"
	oracleAPIKeyEnv   = "OPENAI_API_KEY"
	oracleModelEnv    = "ORACLE_MODEL"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
	serverPortEnv     = "PORT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Server        ServerConfig       `yaml:"server"`
	Oracle        OracleConfig       `yaml:"oracle"`
	Transcript    TranscriptConfig   `yaml:"transcript"`
	Analysis      AnalysisConfig     `yaml:"analysis"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig describes the HTTP host surface.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// OracleConfig defines how to contact the reasoning oracle (an
// OpenAI-compatible chat completion API).
type OracleConfig struct {
	Endpoint       string  `yaml:"endpoint"`
	Model          string  `yaml:"model"`
	APIKey         string  `yaml:"apiKey"`
	SystemPrompt   string  `yaml:"systemPrompt"`
	Temperature    float64 `yaml:"temperature"`
	MaxTokens      int     `yaml:"maxTokens"`
	TimeoutSeconds int     `yaml:"timeoutSeconds"`
	PaceMillis     int     `yaml:"paceMillis"`
}

// Timeout resolves the per-call oracle timeout.
func (o OracleConfig) Timeout() time.Duration {
	if o.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// Pace resolves the minimum spacing between oracle calls.
func (o OracleConfig) Pace() time.Duration {
	if o.PaceMillis <= 0 {
		return 1200 * time.Millisecond
	}
	return time.Duration(o.PaceMillis) * time.Millisecond
}

// TranscriptConfig orders the acquisition strategies and bounds each attempt.
type TranscriptConfig struct {
	Strategies     []string `yaml:"strategies"`
	TimeoutSeconds int      `yaml:"timeoutSeconds"`
}

// Timeout resolves the per-strategy attempt bound.
func (t TranscriptConfig) Timeout() time.Duration {
	if t.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// AnalysisConfig tunes segmentation and aggregation without code changes.
type AnalysisConfig struct {
	MinSegmentChars   int     `yaml:"minSegmentChars"`
	EvidenceCap       int     `yaml:"evidenceCap"`
	SourceCap         int     `yaml:"sourceCap"`
	AccurateThreshold float64 `yaml:"accurateThreshold"`
	MixedThreshold    float64 `yaml:"mixedThreshold"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Load reads .env, YAML configuration (if present), and applies environment
// overrides on top of built-in defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Transcript.Strategies) == 0 {
		cfg.Transcript.Strategies = defaultConfig().Transcript.Strategies
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(oracleAPIKeyEnv); v != "" {
		c.Oracle.APIKey = v
	}

	if v := os.Getenv(oracleModelEnv); v != "" {
		c.Oracle.Model = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}

	if v := os.Getenv(serverPortEnv); v != "" {
		c.Server.Port = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Server.Port != "" {
		base.Server.Port = override.Server.Port
	}

	if override.Oracle.Endpoint != "" {
		base.Oracle.Endpoint = override.Oracle.Endpoint
	}
	if override.Oracle.Model != "" {
		base.Oracle.Model = override.Oracle.Model
	}
	if override.Oracle.APIKey != "" {
		base.Oracle.APIKey = override.Oracle.APIKey
	}
	if override.Oracle.SystemPrompt != "" {
		base.Oracle.SystemPrompt = override.Oracle.SystemPrompt
	}
	if override.Oracle.Temperature > 0 {
		base.Oracle.Temperature = override.Oracle.Temperature
	}
	if override.Oracle.MaxTokens > 0 {
		base.Oracle.MaxTokens = override.Oracle.MaxTokens
	}
	if override.Oracle.TimeoutSeconds > 0 {
		base.Oracle.TimeoutSeconds = override.Oracle.TimeoutSeconds
	}
	if override.Oracle.PaceMillis > 0 {
		base.Oracle.PaceMillis = override.Oracle.PaceMillis
	}

	if len(override.Transcript.Strategies) > 0 {
		base.Transcript.Strategies = override.Transcript.Strategies
	}
	if override.Transcript.TimeoutSeconds > 0 {
		base.Transcript.TimeoutSeconds = override.Transcript.TimeoutSeconds
	}

	if override.Analysis.MinSegmentChars > 0 {
		base.Analysis.MinSegmentChars = override.Analysis.MinSegmentChars
	}
	if override.Analysis.EvidenceCap > 0 {
		base.Analysis.EvidenceCap = override.Analysis.EvidenceCap
	}
	if override.Analysis.SourceCap > 0 {
		base.Analysis.SourceCap = override.Analysis.SourceCap
	}
	if override.Analysis.AccurateThreshold > 0 {
		base.Analysis.AccurateThreshold = override.Analysis.AccurateThreshold
	}
	if override.Analysis.MixedThreshold > 0 {
		base.Analysis.MixedThreshold = override.Analysis.MixedThreshold
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Server:  ServerConfig{Port: "8080"},
		Oracle: OracleConfig{
			Endpoint:       "https://api.openai.com/v1/chat/completions",
			Model:          "gpt-4o-mini",
			APIKey:         "",
			SystemPrompt:   "You are a meticulous fact-checker. Answer with strict JSON only.",
			Temperature:    0.2,
			MaxTokens:      600,
			TimeoutSeconds: 15,
			PaceMillis:     1200,
		},
		Transcript: TranscriptConfig{
			Strategies:     []string{"direct", "normalized", "altforms", "bounded"},
			TimeoutSeconds: 10,
		},
		Analysis: AnalysisConfig{
			MinSegmentChars:   20,
			EvidenceCap:       4,
			SourceCap:         3,
			AccurateThreshold: 0.8,
			MixedThreshold:    0.6,
		},
		Notifications: NotificationConfig{
			Telegram: TelegramConfig{BotToken: "", ChatID: ""},
		},
	}
}

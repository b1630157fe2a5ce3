// Package config loads service configuration from the environment.
// A .env file is honored when present (godotenv), then viper reads the
// process environment with defaults.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string

	// MemoryMode runs without Postgres: in-memory sessions and customer
	// store. Meant for local development and demos.
	MemoryMode bool

	DatabaseURL string

	// SessionBackend is one of "memory", "postgres", "redis".
	SessionBackend string
	RedisAddr      string
	SessionTTL     time.Duration

	OpenAIKey      string
	OpenAIModel    string
	SpeechTimeout  time.Duration
	ExtractTimeout time.Duration

	// VoiceChannel additionally exposes the web-chat endpoint through the
	// voice presenter. Requires OpenAIKey.
	VoiceChannel bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("REGBOT_MEMORY_MODE", false)
	v.SetDefault("SESSION_BACKEND", "postgres")
	v.SetDefault("SESSION_TTL", "0")
	v.SetDefault("OPENAI_MODEL", "")
	v.SetDefault("SPEECH_TIMEOUT", "15s")
	v.SetDefault("EXTRACT_TIMEOUT", "10s")
	v.SetDefault("VOICE_CHANNEL", false)

	cfg := &Config{
		Port:           v.GetString("PORT"),
		MemoryMode:     v.GetBool("REGBOT_MEMORY_MODE"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		SessionBackend: v.GetString("SESSION_BACKEND"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		OpenAIKey:      v.GetString("OPENAI_API_KEY"),
		OpenAIModel:    v.GetString("OPENAI_MODEL"),
		SpeechTimeout:  v.GetDuration("SPEECH_TIMEOUT"),
		ExtractTimeout: v.GetDuration("EXTRACT_TIMEOUT"),
		VoiceChannel:   v.GetBool("VOICE_CHANNEL"),
	}

	if cfg.MemoryMode {
		cfg.SessionBackend = "memory"
	}
	if !cfg.MemoryMode && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is not set (or set REGBOT_MEMORY_MODE=true)")
	}
	if cfg.SessionBackend == "redis" && cfg.RedisAddr == "" {
		return nil, fmt.Errorf("config: SESSION_BACKEND=redis requires REDIS_ADDR")
	}
	if cfg.VoiceChannel && cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("config: VOICE_CHANNEL=true requires OPENAI_API_KEY")
	}
	return cfg, nil
}

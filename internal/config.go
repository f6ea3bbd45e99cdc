package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the full environment surface. The two secrets and the
// manifesto path are fatal startup preconditions; everything else has
// a default matching the reference deployment.
type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required=true" validate:"required"`
	GeminiAPIKey     string `env:"GEMINI_API_KEY,required=true" validate:"required"`
	ManifestoPath    string `env:"MANIFESTO_PATH,required=true" validate:"required"`

	GeminiModel       string        `env:"GEMINI_MODEL,default=gemini-2.5-pro" validate:"required"`
	HistoryLimit      int           `env:"HISTORY_LIMIT,default=5" validate:"gte=1"`
	DuelPlayerLimit   int           `env:"DUEL_PLAYER_LIMIT,default=5" validate:"gte=2"`
	MaxMessageLength  int           `env:"MAX_MESSAGE_LENGTH,default=4096" validate:"gte=64"`
	GenerateTimeout   time.Duration `env:"GENERATE_TIMEOUT,default=2m"`
	BufferSize        int           `env:"BUFFER_SIZE,default=64" validate:"gte=1"`
	FindLimit         int           `env:"FIND_LIMIT,default=5" validate:"gte=1"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=1m"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`

	// CensoredDir enables the outbound word filter when set.
	CensoredDir *string `env:"CENSORED_DIR"`
}

// Validate enforces the startup preconditions beyond mere presence.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.GenerateTimeout <= 0 {
		return fmt.Errorf("GENERATE_TIMEOUT must be positive, got %s", c.GenerateTimeout)
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("HEARTBEAT_INTERVAL must be positive, got %s", c.HeartbeatInterval)
	}
	return nil
}

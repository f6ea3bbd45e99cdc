package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"manifesto-bot/ai"
	"manifesto-bot/domain"
	"manifesto-bot/index"
	"manifesto-bot/internal"
	"manifesto-bot/moderation"
	"manifesto-bot/prompt"
	"manifesto-bot/runtime"
	"manifesto-bot/runtime/workers"
	"manifesto-bot/telegram"
)

// Exit codes to provide meaningful status to the operating system or
// service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const censoredReplacement = '*'

func main() {
	// The main function acts as a thin wrapper. Its only responsibility
	// is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the bot lifecycle, and
// centralizes error reporting, so every defer (index teardown, update
// stream shutdown) executes before the process exits.
func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Knowledge corpus & ranked index
	logger.Info("Loading manifesto", "path", config.ManifestoPath)
	manifesto, err := runtime.LoadManifesto(config.ManifestoPath)
	if err != nil {
		return exitConfig, err
	}
	logger.Info("Manifesto loaded", "paragraphs", manifesto.Len())

	paragraphIndex, err := index.New(manifesto)
	if err != nil {
		return exitRuntime, fmt.Errorf("building manifesto index: %w", err)
	}
	defer func() {
		logger.Info("Closing index...")
		_ = paragraphIndex.Close()
	}()

	// 3. External collaborators
	generator, err := ai.NewGemini(ctx, config.GeminiAPIKey, config.GeminiModel, logger)
	if err != nil {
		return exitRuntime, err
	}

	transport, err := telegram.New(config.TelegramBotToken, logger)
	if err != nil {
		return exitRuntime, err
	}
	bot := transport.Bot()
	logger.Info("Assistant online", "username", bot.Username)

	// 4. Optional outbound moderation
	censor, err := buildCensor(config, logger)
	if err != nil {
		return exitConfig, err
	}

	// 5. Orchestration
	deps := workers.SessionDeps{
		History:   domain.NewHistoryStore(config.HistoryLimit),
		Manifesto: manifesto,
		Index:     paragraphIndex,
		Composer:  prompt.NewComposer(manifesto.Raw()),
		Generator: generator,
		Transport: transport,
		Censor:    censor,
		Bot:       bot,
		Log:       logger,
	}
	limits := workers.Limits{
		MaxMessageLen:   config.MaxMessageLength,
		PlayerLimit:     config.DuelPlayerLimit,
		FindLimit:       config.FindLimit,
		GenerateTimeout: config.GenerateTimeout,
	}

	orchestrator := runtime.NewOrchestrator(
		logger,
		workers.NewSupervisor(logger),
		runtime.NewSessionRegistry(config.BufferSize),
		transport,
		telegram.NewRouter(),
		deps,
		limits,
		config.HeartbeatInterval,
	)

	defer orchestrator.Stop()

	if err := orchestrator.Start(ctx); err != nil {
		return exitRuntime, err
	}

	logger.Info("Shutdown complete")
	return exitOK, nil
}

// buildCensor loads the censored-word dictionaries when configured.
// No directory means no outbound moderation at all.
func buildCensor(config internal.Config, logger *slog.Logger) (workers.Censor, error) {
	if config.CensoredDir == nil {
		return nil, nil
	}

	loader := runtime.NewDictionaryLoader(os.DirFS(*config.CensoredDir))
	data, err := loader.LoadAll(".")
	if err != nil {
		return nil, fmt.Errorf("loading censored words: %w", err)
	}
	logger.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	logger.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

	moderator, err := moderation.NewModerator(data.Words, censoredReplacement)
	if err != nil {
		return nil, fmt.Errorf("building moderator: %w", err)
	}
	return moderator, nil
}

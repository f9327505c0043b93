package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gridgame/internal/config"
	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/repository"
	"github.com/rocketscienceinc/gridgame/internal/repository/storage"
	"github.com/rocketscienceinc/gridgame/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// App is what a host presentation layer holds on to.
type App struct {
	Manager *usecase.GameManager

	log   *slog.Logger
	conf  *config.Config
	redis *redis.Client
}

// New - connects storage and wires the game manager.
func New(ctx context.Context, logger *slog.Logger, conf *config.Config, hooks usecase.Hooks) (*App, error) {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage, conf.Redis.GameTTL)
	gameRepo := repository.NewGameRepository(redisStorage, conf.Redis.GameTTL)

	log.Info("storage connected", "addr", redisAddrString)

	return &App{
		Manager: usecase.NewGameManager(logger, playerRepo, gameRepo, nil, hooks),

		log:   log,
		conf:  conf,
		redis: redisStorage,
	}, nil
}

// NewGame - sets up a game with the configured board size and player names.
func (that *App) NewGame(ctx context.Context) (*entity.Game, error) {
	board := that.conf.Board

	game, err := that.Manager.Setup(ctx, board.Size, board.PlayerOne, board.PlayerTwo)
	if err != nil {
		return nil, fmt.Errorf("could not set up game: %w", err)
	}

	return game, nil
}

func (that *App) Close() error {
	if err := that.redis.Close(); err != nil {
		that.log.Error("could not close redis storage", "error", err)
		return fmt.Errorf("could not close redis storage: %w", err)
	}

	return nil
}

// NewLogger - JSON logger with the configured level, info when unknown.
func NewLogger(w io.Writer, conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

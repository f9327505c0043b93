package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridgame/internal/board"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// Hooks are called after a placement has been stored. Nil hooks are skipped.
type Hooks struct {
	OnPlaced       func(game *entity.Game, at entity.Coord, by *entity.Player)
	OnTurnSwitched func(game *entity.Game, next *entity.Player)
	// OnGameOver gets a nil winner and line on a draw.
	OnGameOver func(game *entity.Game, winner *entity.Player, line []entity.Coord)
}

type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo

	pickStarter board.StarterPicker
	hooks       Hooks
}

// NewGameManager - a nil picker chooses the starting player at random.
func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, pickStarter board.StarterPicker, hooks Hooks) *GameManager {
	if pickStarter == nil {
		pickStarter = rand.Intn
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,

		pickStarter: pickStarter,
		hooks:       hooks,
	}
}

// Setup - creates both players and a started game, and stores them.
func (that *GameManager) Setup(ctx context.Context, boardSize int, playerOneName, playerTwoName string) (*entity.Game, error) {
	playerOne := &entity.Player{ID: uuid.NewString(), Name: playerOneName}
	playerTwo := &entity.Player{ID: uuid.NewString(), Name: playerTwoName}

	gameBoard, err := board.New(boardSize, playerOne, playerTwo)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	gameBoard.SetID(uuid.NewString())

	if err = gameBoard.Start(that.pickStarter); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	game := gameBoard.State()

	for _, player := range game.Players {
		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "size", game.Size, "first_player", game.Turn)

	if that.hooks.OnTurnSwitched != nil {
		that.hooks.OnTurnSwitched(game, gameBoard.CurrentPlayer())
	}

	return game, nil
}

// Place - marks (x, y) for the player to move in the given game.
// A rejected placement comes back as a result with a nil error and is not stored.
func (that *GameManager) Place(ctx context.Context, gameID string, x, y int) (board.PlacementResult, error) {
	log := that.logger.With("method", "Place", "game_id", gameID)

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return board.PlacementResult{}, err
	}

	gameBoard, err := board.Restore(game)
	if err != nil {
		return board.PlacementResult{}, fmt.Errorf("failed to restore board: %w", err)
	}

	placer := gameBoard.CurrentPlayer()

	res := gameBoard.Place(x, y)
	if !res.Accepted() {
		log.Debug("placement rejected", "x", x, "y", y, "reason", res.Reason)
		return res, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, res.State); err != nil {
		log.Error("failed to store placement", "error", err)
		return board.PlacementResult{}, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("marker placed", "x", x, "y", y, "player_id", placer.ID, "outcome", res.Outcome)

	that.notify(res, placer)

	return res, nil
}

func (that *GameManager) notify(res board.PlacementResult, placer *entity.Player) {
	if that.hooks.OnPlaced != nil {
		that.hooks.OnPlaced(res.State, res.Coord, placer)
	}

	switch res.Outcome {
	case board.OutcomeWon:
		that.logger.Info("game won", "game_id", res.State.ID, "winner", placer.ID, "line", res.WinningLine)
		if that.hooks.OnGameOver != nil {
			that.hooks.OnGameOver(res.State, placer, res.WinningLine)
		}
	case board.OutcomeDraw:
		that.logger.Info("game drawn", "game_id", res.State.ID)
		if that.hooks.OnGameOver != nil {
			that.hooks.OnGameOver(res.State, nil, nil)
		}
	default:
		if that.hooks.OnTurnSwitched != nil {
			that.hooks.OnTurnSwitched(res.State, res.NextPlayer)
		}
	}
}

// State - returns the stored snapshot for rendering.
func (that *GameManager) State(ctx context.Context, gameID string) (*entity.Game, error) {
	return that.getGameByID(ctx, gameID)
}

func (that *GameManager) Player(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

// Delete - drops a game, usually once the host is done showing the result.
func (that *GameManager) Delete(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", gameID)

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

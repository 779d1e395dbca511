package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
	"github.com/phrogbot/phrogbot/internal/repository"
)

type QuizService interface {
	Start(key entities.SessionKey, userName string) error
	Submit(key entities.SessionKey, submitterID int64, round int, chosenKey string) (*entities.AnswerOutcome, error)
}

type FrogService interface {
	Pick(chatID int64) (*entities.Species, entities.Image, error)
}

type FactService interface {
	Random(ctx context.Context) (string, error)
}

type LeaderboardService interface {
	TopByChat(ctx context.Context, chatID int64, limit int) ([]repository.LeaderboardEntry, error)
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	quiz        QuizService
	frog        FrogService
	facts       FactService
	leaderboard LeaderboardService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quiz QuizService,
	frog FrogService,
	facts FactService,
	leaderboard LeaderboardService,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		quiz:        quiz,
		frog:        frog,
		facts:       facts,
		leaderboard: leaderboard,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	if !update.Message.IsCommand() {
		return
	}

	chatID := update.Message.Chat.ID
	from := update.Message.From

	switch update.Message.Command() {
	case "start", "help":
		h.send(newPlainMessage(chatID, msgWelcome))

	case "frogquiz":
		h.handleFrogQuiz(chatID, from)

	case "frog":
		h.handleFrog(chatID)

	case "fact":
		h.handleFact(ctx, chatID)

	case "leaderboard":
		h.handleLeaderboard(ctx, chatID)

	default:
		h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

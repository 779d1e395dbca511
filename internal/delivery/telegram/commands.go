package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

const leaderboardSize = 10

// handleFrogQuiz starts a quiz run for the sender in this chat. On success
// the presenter posts round 1, so there is nothing to send here.
func (h *Handler) handleFrogQuiz(chatID int64, from *tgbotapi.User) {
	key := entities.SessionKey{ChatID: chatID, UserID: from.ID}

	err := h.quiz.Start(key, userDisplayName(from))
	switch {
	case err == nil:

	case errors.Is(err, entities.ErrNotEnoughSpecies):
		h.send(newPlainMessage(chatID, msgNotEnoughSpecies))

	case errors.Is(err, entities.ErrQuizAlreadyActive):
		h.send(newPlainMessage(chatID, msgQuizAlreadyActive))

	default:
		h.logger.Error("failed to start quiz",
			zap.Int64("chat_id", chatID),
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
	}
}

// handleFrog posts a random frog image, honoring the per-chat cooldown.
func (h *Handler) handleFrog(chatID int64) {
	species, image, err := h.frog.Pick(chatID)
	if err != nil {
		if errors.Is(err, entities.ErrOnCooldown) {
			h.send(newPlainMessage(chatID, msgFrogCooldown))
			return
		}
		h.logger.Error("failed to pick a frog", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(image.Path))
	photo.Caption = fmt.Sprintf(msgFrogCaption, species.DisplayName)
	h.send(photo)
}

// handleFact posts one frog fact.
func (h *Handler) handleFact(ctx context.Context, chatID int64) {
	fact, err := h.facts.Random(ctx)
	if err != nil {
		h.send(newPlainMessage(chatID, msgFactUnavailable))
		return
	}

	h.send(newPlainMessage(chatID, "🐸 "+fact))
}

// handleLeaderboard posts this chat's best quiz scores.
func (h *Handler) handleLeaderboard(ctx context.Context, chatID int64) {
	entries, err := h.leaderboard.TopByChat(ctx, chatID, leaderboardSize)
	if err != nil {
		h.logger.Error("failed to load leaderboard", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	if len(entries) == 0 {
		h.send(newPlainMessage(chatID, msgLeaderboardEmpty))
		return
	}

	var b strings.Builder
	b.WriteString(msgLeaderboardHeader)
	for i, e := range entries {
		name := e.UserName
		if name == "" {
			name = fmt.Sprintf("user %d", e.UserID)
		}
		fmt.Fprintf(&b, "%d. %s — best %d (%d quizzes)\n", i+1, name, e.BestScore, e.Quizzes)
	}

	h.send(newPlainMessage(chatID, b.String()))
}

// userDisplayName builds the name stored with quiz results.
func userDisplayName(from *tgbotapi.User) string {
	if from.UserName != "" {
		return "@" + from.UserName
	}
	return strings.TrimSpace(from.FirstName + " " + from.LastName)
}

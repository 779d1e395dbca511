package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

func (h *Handler) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionQuizAnswer:
		h.handleQuizAnswerCallback(cb, cd)
	default:
	}
}

// handleQuizAnswerCallback routes an answer click into the quiz engine and
// answers the callback with the verdict. Rejections are private: only the
// clicking user sees them.
func (h *Handler) handleQuizAnswerCallback(cb *tgbotapi.CallbackQuery, cd callbackData) {
	ownerID, round, speciesKey, err := parseQuizAnswer(cd)
	if err != nil {
		h.logger.Warn("malformed quiz callback", zap.String("data", cb.Data), zap.Error(err))
		h.answerCallback(cb.ID, "")
		return
	}

	key := entities.SessionKey{ChatID: cb.Message.Chat.ID, UserID: ownerID}

	outcome, err := h.quiz.Submit(key, cb.From.ID, round, speciesKey)
	switch {
	case err == nil:

	case errors.Is(err, entities.ErrNotYourQuiz):
		h.answerCallbackAlert(cb.ID, msgNotYourQuiz)
		return

	case errors.Is(err, entities.ErrQuizNotFound), errors.Is(err, entities.ErrRoundClosed):
		h.answerCallbackAlert(cb.ID, msgQuestionEnded)
		return

	default:
		h.logger.Error("failed to submit answer",
			zap.Int64("chat_id", key.ChatID),
			zap.Int64("user_id", cb.From.ID),
			zap.Error(err),
		)
		h.answerCallbackAlert(cb.ID, msgInternalError)
		return
	}

	verdict := msgAnswerCorrect
	if !outcome.Correct {
		verdict = fmt.Sprintf(msgAnswerWrong, outcome.CorrectName)
	}
	h.answerCallback(cb.ID, verdict)
}

// answerCallback clears the user's pending "clock" on the button, optionally
// with a small toast text.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

// answerCallbackAlert shows the text as a popup visible only to the clicker.
func (h *Handler) answerCallbackAlert(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallbackWithAlert(id, text)); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

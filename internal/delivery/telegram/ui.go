package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

// buildQuizAnswerKeyboard builds the answer keyboard for a question, one
// lettered button per choice.
func buildQuizAnswerKeyboard(ownerID int64, round int, question *entities.Question) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(question.Choices))
	for i, choice := range question.Choices {
		label := fmt.Sprintf("%c. %s", 'A'+i, choice.Label)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizAnswerCallback(ownerID, round, choice.Key)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

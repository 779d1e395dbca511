// messages.go contains message templates for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "🐸 Ribbit! I post frogs.\n\n" +
		"/frog — a random frog\n" +
		"/fact — a frog fact\n" +
		"/frogquiz — guess the species, 4 choices, clock is ticking\n" +
		"/leaderboard — best quiz scores in this chat"
	msgUnknownCommand = "Unknown command. Try /frog, /fact, /frogquiz or /leaderboard."

	msgNotEnoughSpecies  = "Not enough frog species for the quiz."
	msgQuizAlreadyActive = "You already have a quiz running here 🐸"
	msgQuestionEnded     = "⏰ This question has ended."
	msgNotYourQuiz       = "This isn't your quiz 🐸"
	msgAnswerCorrect     = "✅ Correct! 🐸"
	msgAnswerWrong       = "❌ Wrong! It was %s."
	msgQuizQuestion      = "🐸 Frog Quiz (%d/%d)\n⏱ You have %d seconds!"
	msgTimeUp            = "⏰ Time's up! It was %s."
	msgQuizComplete      = "🏁 Quiz complete!\n\nScore: %d / %d 🐸"

	msgFrogCaption      = "🐸 %s"
	msgFrogCooldown     = "Easy there, the frogs need a break. Try again in a bit 🐸"
	msgFactUnavailable  = "No frog facts right now. Try again later."
	msgLeaderboardEmpty = "Nobody has finished a quiz in this chat yet. Be the first: /frogquiz"
	msgInternalError    = "Something went wrong. Try again later."
)

const msgLeaderboardHeader = "🏆 Frog Quiz leaderboard\n\n"

// newPlainMessage creates a plain text message.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

package telegram

import (
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

// Presenter renders quiz engine events into Telegram messages. It remembers
// the message ID of each session's outstanding question so the buttons can
// be edited away once the round closes.
type Presenter struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger

	rounds  int
	timeout time.Duration

	mu       sync.Mutex
	messages map[entities.SessionKey]postedQuestion
}

type postedQuestion struct {
	chatID    int64
	messageID int
}

// NewPresenter creates a Presenter. rounds and timeout mirror the engine's
// configuration and only affect the question caption.
func NewPresenter(bot *tgbotapi.BotAPI, logger *zap.Logger, rounds int, timeout time.Duration) *Presenter {
	return &Presenter{
		bot:      bot,
		logger:   logger,
		rounds:   rounds,
		timeout:  timeout,
		messages: make(map[entities.SessionKey]postedQuestion),
	}
}

// PostQuestion sends the question image with its answer keyboard.
func (p *Presenter) PostQuestion(session *entities.Session, question *entities.Question) {
	photo := tgbotapi.NewPhoto(session.Key.ChatID, tgbotapi.FilePath(question.Image.Path))
	photo.Caption = fmt.Sprintf(msgQuizQuestion,
		session.Rounds+1, p.rounds, int(p.timeout.Seconds()))
	photo.ReplyMarkup = buildQuizAnswerKeyboard(session.Key.UserID, session.Rounds, question)

	sent, err := p.bot.Send(photo)
	if err != nil {
		p.logger.Error("failed to post quiz question",
			zap.Int64("chat_id", session.Key.ChatID),
			zap.Error(err),
		)
		return
	}

	p.mu.Lock()
	p.messages[session.Key] = postedQuestion{chatID: session.Key.ChatID, messageID: sent.MessageID}
	p.mu.Unlock()
}

// RetireQuestion strips the answer buttons from the closed round's message.
func (p *Presenter) RetireQuestion(key entities.SessionKey) {
	posted, ok := p.takeMessage(key)
	if !ok {
		return
	}

	markup := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	edit := tgbotapi.NewEditMessageReplyMarkup(posted.chatID, posted.messageID, markup)
	if _, err := p.bot.Request(edit); err != nil {
		p.logger.Error("failed to retire quiz question", zap.Error(err))
	}
}

// PostTimeout rewrites the expired question's caption with the answer, which
// also drops the keyboard.
func (p *Presenter) PostTimeout(key entities.SessionKey, correctName string) {
	posted, ok := p.takeMessage(key)
	if !ok {
		return
	}

	edit := tgbotapi.NewEditMessageCaption(posted.chatID, posted.messageID,
		fmt.Sprintf(msgTimeUp, correctName))
	if _, err := p.bot.Request(edit); err != nil {
		p.logger.Error("failed to post quiz timeout", zap.Error(err))
	}
}

// PostFinal announces the final score.
func (p *Presenter) PostFinal(key entities.SessionKey, score, rounds int) {
	msg := newPlainMessage(key.ChatID, fmt.Sprintf(msgQuizComplete, score, rounds))
	if _, err := p.bot.Send(msg); err != nil {
		p.logger.Error("failed to post quiz result", zap.Error(err))
	}
}

func (p *Presenter) takeMessage(key entities.SessionKey) (postedQuestion, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	posted, ok := p.messages[key]
	if ok {
		delete(p.messages, key)
	}
	return posted, ok
}

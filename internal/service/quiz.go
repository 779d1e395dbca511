package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

// QuizService drives quiz sessions through their rounds. All session
// transitions (start, answer, timeout) run under one mutex, so for any given
// session the timer expiry and the answer submission can never close the
// same round twice: whichever grabs the lock first wins and the loser
// observes the round already closed.
type QuizService struct {
	mu        sync.Mutex
	catalog   Catalog
	store     SessionStore
	generator *QuestionGenerator
	presenter Presenter
	recorder  ResultRecorder
	logger    *zap.Logger

	rounds  int           // rounds per quiz
	timeout time.Duration // per-question answer deadline
}

// NewQuizService creates the quiz engine.
func NewQuizService(
	catalog Catalog,
	store SessionStore,
	generator *QuestionGenerator,
	presenter Presenter,
	recorder ResultRecorder,
	logger *zap.Logger,
	rounds int,
	timeout time.Duration,
) *QuizService {
	return &QuizService{
		catalog:   catalog,
		store:     store,
		generator: generator,
		presenter: presenter,
		recorder:  recorder,
		logger:    logger,
		rounds:    rounds,
		timeout:   timeout,
	}
}

// Start creates a session for the key and posts round 1. It fails with
// entities.ErrNotEnoughSpecies when the catalog cannot back a question (no
// session is created in that case) and with entities.ErrQuizAlreadyActive
// when the user already has a quiz running in this chat.
func (s *QuizService) Start(key entities.SessionKey, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog.Len() < questionChoices {
		return entities.ErrNotEnoughSpecies
	}

	session, err := s.store.Create(key, userName)
	if err != nil {
		return err
	}

	if err := s.startRoundLocked(session); err != nil {
		s.store.Remove(key)
		return err
	}

	s.logger.Info("quiz started",
		zap.Int64("chat_id", key.ChatID),
		zap.Int64("user_id", key.UserID),
	)

	return nil
}

// Submit handles an answer click for round (0-based, the button carries it).
// It validates the session, the round, and the submitting user, then closes
// the round and advances the quiz. A stale click for a round the timer
// already closed fails with entities.ErrRoundClosed and never bleeds into
// the round that replaced it. A click from anyone but the session owner
// fails with entities.ErrNotYourQuiz and leaves the round, its timer, and
// the score untouched.
func (s *QuizService) Submit(key entities.SessionKey, submitterID int64, round int, chosenKey string) (*entities.AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store.Get(key)
	if !ok {
		return nil, entities.ErrQuizNotFound
	}

	question := session.Current
	if question == nil || round != session.Rounds {
		return nil, entities.ErrRoundClosed
	}

	if submitterID != session.Key.UserID {
		return nil, entities.ErrNotYourQuiz
	}

	correct := chosenKey == question.CorrectKey
	s.closeRoundLocked(session, correct)
	s.presenter.RetireQuestion(key)

	outcome := &entities.AnswerOutcome{
		Correct:     correct,
		CorrectName: question.CorrectName,
		Score:       session.Score,
		Rounds:      session.Rounds,
		Final:       session.Rounds >= s.rounds,
	}

	s.advanceLocked(session)

	return outcome, nil
}

// startRoundLocked generates the next question, arms its expiry timer, and
// hands the question to the presenter. Caller holds s.mu.
func (s *QuizService) startRoundLocked(session *entities.Session) error {
	question, err := s.generator.Generate(s.catalog.GetAll(), s.timeout)
	if err != nil {
		return err
	}

	session.Current = question
	key := session.Key
	session.Timer = time.AfterFunc(s.timeout, func() {
		s.expire(key, question)
	})

	s.presenter.PostQuestion(session, question)

	return nil
}

// closeRoundLocked closes the active round. Clearing Current is the first
// step: any later event for this round will observe it closed and no-op.
// Caller holds s.mu.
func (s *QuizService) closeRoundLocked(session *entities.Session, correct bool) {
	session.Current = nil
	if session.Timer != nil {
		session.Timer.Stop()
		session.Timer = nil
	}
	session.Rounds++
	if correct {
		session.Score++
	}
}

// advanceLocked either starts the next round or finishes the quiz once the
// configured round count is reached. Caller holds s.mu.
func (s *QuizService) advanceLocked(session *entities.Session) {
	if session.Rounds < s.rounds {
		if err := s.startRoundLocked(session); err != nil {
			// The catalog is immutable, so this cannot happen after a quiz
			// started; abandon the session rather than leave it stuck.
			s.logger.Error("failed to start next round, abandoning quiz",
				zap.Int64("chat_id", session.Key.ChatID),
				zap.Int64("user_id", session.Key.UserID),
				zap.Error(err),
			)
			s.store.Remove(session.Key)
		}
		return
	}

	s.store.Remove(session.Key)
	s.presenter.PostFinal(session.Key, session.Score, session.Rounds)

	result := &entities.QuizResult{
		ChatID:     session.Key.ChatID,
		UserID:     session.Key.UserID,
		UserName:   session.UserName,
		Score:      session.Score,
		Rounds:     session.Rounds,
		StartedAt:  session.StartedAt,
		FinishedAt: time.Now(),
	}

	// Recording is best effort and must not hold up the engine.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.recorder.Save(ctx, result); err != nil {
			s.logger.Error("failed to record quiz result",
				zap.Int64("chat_id", result.ChatID),
				zap.Int64("user_id", result.UserID),
				zap.Error(err),
			)
		}
	}()
}

// expire runs when a question's timer fires. The question pointer pins the
// round the timer was armed for: if the session moved on (or ended) before
// the lock was acquired, the expiry is stale and does nothing.
func (s *QuizService) expire(key entities.SessionKey, question *entities.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store.Get(key)
	if !ok || session.Current != question {
		return
	}

	s.closeRoundLocked(session, false)
	s.presenter.PostTimeout(key, question.CorrectName)

	s.logger.Debug("round timed out",
		zap.Int64("chat_id", key.ChatID),
		zap.Int64("user_id", key.UserID),
		zap.Int("round", session.Rounds),
	)

	s.advanceLocked(session)
}

package entities

import (
	"fmt"
	"time"
)

// SessionKey identifies one concurrent quiz run. A user may run at most one
// quiz per chat at a time, so the key is the (chat, user) pair.
type SessionKey struct {
	ChatID int64
	UserID int64
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%d:%d", k.ChatID, k.UserID)
}

// Session is one user's quiz run. All mutation happens under the quiz
// engine's lock; the session struct itself carries no synchronization.
type Session struct {
	Key       SessionKey
	UserName  string      // display name of the owner, kept for the final result
	Rounds    int         // rounds completed so far
	Score     int         // correct answers so far
	Current   *Question   // active question, nil between rounds
	Timer     *time.Timer // pending expiry timer for Current, nil between rounds
	StartedAt time.Time
}

// NewSession creates a fresh session in the "awaiting round 1" state.
func NewSession(key SessionKey, userName string) *Session {
	return &Session{
		Key:       key,
		UserName:  userName,
		StartedAt: time.Now(),
	}
}

// AnswerOutcome is what the answer handler reports back to the delivery
// layer after a successful submission.
type AnswerOutcome struct {
	Correct     bool
	CorrectName string // display name of the correct species, for feedback
	Score       int    // score after this round closed
	Rounds      int    // rounds completed after this round closed
	Final       bool   // true when this answer finished the quiz
}

// QuizResult is the persisted record of a completed quiz run.
type QuizResult struct {
	ChatID     int64
	UserID     int64
	UserName   string
	Score      int
	Rounds     int
	StartedAt  time.Time
	FinishedAt time.Time
}

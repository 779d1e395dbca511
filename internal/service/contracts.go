package service

import (
	"context"

	"github.com/phrogbot/phrogbot/internal/domain/entities"
)

// Catalog is the read-only species catalog loaded at startup.
type Catalog interface {
	GetAll() []*entities.Species
	GetByKey(key string) (*entities.Species, error)
	GetRandom() (*entities.Species, error)
	Len() int
}

// SessionStore owns the active quiz sessions. Create must fail with
// entities.ErrQuizAlreadyActive when a session already exists for the key.
type SessionStore interface {
	Create(key entities.SessionKey, userName string) (*entities.Session, error)
	Get(key entities.SessionKey) (*entities.Session, bool)
	Remove(key entities.SessionKey)
}

// Presenter delivers quiz output to the chat. The engine never talks to the
// messaging transport directly; the delivery layer implements this.
type Presenter interface {
	// PostQuestion presents a new round: the image plus the answer buttons.
	PostQuestion(session *entities.Session, question *entities.Question)
	// RetireQuestion disables the answer buttons of the current round's
	// message after the round closed on an answer.
	RetireQuestion(key entities.SessionKey)
	// PostTimeout announces an expired round and reveals the answer.
	PostTimeout(key entities.SessionKey, correctName string)
	// PostFinal announces the final score of a completed quiz.
	PostFinal(key entities.SessionKey, score, rounds int)
}

// ResultRecorder persists completed quiz runs. A recording failure must not
// break the quiz flow.
type ResultRecorder interface {
	Save(ctx context.Context, result *entities.QuizResult) error
}

// FactClient fetches a frog fact from a remote API, used as a fallback when
// the local corpus metadata has no facts.
type FactClient interface {
	Random(ctx context.Context) (string, error)
}

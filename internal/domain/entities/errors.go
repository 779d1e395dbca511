package entities

import "errors"

var (
	// ErrNotEnoughSpecies is returned when the catalog has fewer than the
	// four species a question needs. The quiz refuses to start instead of
	// generating a degenerate question.
	ErrNotEnoughSpecies = errors.New("not enough species in the catalog")
	// ErrQuizAlreadyActive is returned when a user starts a quiz while one
	// is already running for them in the same chat.
	ErrQuizAlreadyActive = errors.New("quiz already active for this user in this chat")
	// ErrQuizNotFound is returned when an answer arrives for a session that
	// does not exist or has already finished.
	ErrQuizNotFound = errors.New("quiz session not found")
	// ErrRoundClosed is returned when an answer arrives after the round was
	// already closed, usually because the timer fired first.
	ErrRoundClosed = errors.New("round already closed")
	// ErrNotYourQuiz is returned when someone other than the session owner
	// clicks an answer button. The session state is left untouched.
	ErrNotYourQuiz = errors.New("quiz belongs to another user")
	// ErrOnCooldown is returned when a chat asks for a frog image before the
	// cooldown since the previous one has elapsed.
	ErrOnCooldown = errors.New("command is on cooldown")
	// ErrNoFacts is returned when neither the corpus metadata nor the remote
	// API could produce a fact.
	ErrNoFacts = errors.New("no facts available")
)

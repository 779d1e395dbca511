package entities

import "time"

// Choice is one selectable answer on a quiz question.
type Choice struct {
	Key   string // species key submitted back when the button is clicked
	Label string // display name shown on the button
}

// Question is one presented quiz round. It is created when the round starts
// and discarded when the round closes, by answer or by timeout.
type Question struct {
	CorrectKey  string    // species key of the correct answer
	CorrectName string    // display name of the correct species
	Image       Image     // the image drawn from the correct species
	Choices     []Choice  // exactly 4 distinct choices in randomized order
	ExpiresAt   time.Time // absolute answer deadline
}

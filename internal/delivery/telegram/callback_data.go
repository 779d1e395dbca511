package telegram

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuizAnswer = "frogquiz"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildQuizAnswerCallback builds callback data for one answer button. The
// quiz owner's user ID rides along so a click can be checked against the
// session owner, and the round number pins the click to the round the button
// belongs to.
func buildQuizAnswerCallback(ownerID int64, round int, speciesKey string) string {
	return callbackData{
		Action: actionQuizAnswer,
		Params: []string{strconv.FormatInt(ownerID, 10), strconv.Itoa(round), speciesKey},
	}.encode()
}

// parseQuizAnswer extracts the owner ID, round number, and chosen species
// key from quiz answer callback data.
func parseQuizAnswer(cd callbackData) (int64, int, string, error) {
	if len(cd.Params) != 3 {
		return 0, 0, "", fmt.Errorf("invalid quiz callback data: %s", cd.Raw)
	}

	ownerID, err := strconv.ParseInt(cd.Params[0], 10, 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid owner id in callback data %s: %w", cd.Raw, err)
	}

	round, err := strconv.Atoi(cd.Params[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid round in callback data %s: %w", cd.Raw, err)
	}

	return ownerID, round, cd.Params[2], nil
}

package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizAnswerCallbackRoundTrip(t *testing.T) {
	data := buildQuizAnswerCallback(12345, 2, "tomato_frog")
	assert.Equal(t, "frogquiz:12345:2:tomato_frog", data)

	cd := decodeCallback(data)
	require.Equal(t, actionQuizAnswer, cd.Action)

	ownerID, round, key, err := parseQuizAnswer(cd)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), ownerID)
	assert.Equal(t, 2, round)
	assert.Equal(t, "tomato_frog", key)
}

func TestParseQuizAnswerRejectsMalformedData(t *testing.T) {
	for _, data := range []string{
		"frogquiz",
		"frogquiz:12345",
		"frogquiz:12345:2",
		"frogquiz:notanumber:2:tomato_frog",
		"frogquiz:12345:x:tomato_frog",
	} {
		_, _, _, err := parseQuizAnswer(decodeCallback(data))
		assert.Error(t, err, "data %q", data)
	}
}

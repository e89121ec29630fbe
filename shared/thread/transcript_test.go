package thread

import (
	"testing"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(id string, minute int, sender string) domain.TeamMessage {
	return domain.TeamMessage{Id: id, TeamId: "T1", UserId: sender, Message: "msg " + id, CreatedAt: at(minute)}
}

func TestTranscript(t *testing.T) {
	messages := []domain.TeamMessage{
		message("m3", 3, "u2"),
		message("m1", 1, "u1"),
		message("m2", 2, "u3"),
	}
	authors := domain.AuthorDirectory{"u1": "Alice", "u2": "Bob"}

	out := Transcript(messages, authors)

	require.Len(t, out, 3)
	assert.Equal(t, "m1", out[0].Id)
	assert.Equal(t, "Alice", out[0].SenderName)
	assert.Equal(t, "m2", out[1].Id)
	assert.Equal(t, domain.PlaceholderAuthorName, out[1].SenderName)
	assert.Equal(t, "m3", out[2].Id)
	assert.Equal(t, "Bob", out[2].SenderName)

	assert.Equal(t, "m3", messages[0].Id, "input order untouched")
}

func TestTranscript_Empty(t *testing.T) {
	out := Transcript(nil, nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSenderIds(t *testing.T) {
	messages := []domain.TeamMessage{message("a", 1, "u1"), message("b", 2, "u2"), message("c", 3, "u1")}
	assert.Equal(t, []string{"u1", "u2"}, SenderIds(messages))
}

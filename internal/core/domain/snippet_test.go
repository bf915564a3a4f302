package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(v float64) *float64 { return &v }

func TestSnippet_HasTimestamp(t *testing.T) {
	web := Snippet{ID: "w-1", Text: "hello"}
	assert.False(t, web.HasTimestamp())

	video := Snippet{ID: "t-1", Text: "hello", TimestampSec: ts(5), TimestampLabel: "0:05"}
	assert.True(t, video.HasTimestamp())
}

func TestScoredSnippet_Citation(t *testing.T) {
	s := ScoredSnippet{
		Snippet: Snippet{ID: "t-2", Text: "a moment", TimestampSec: ts(12.5), TimestampLabel: "0:12"},
		Score:   0.75,
	}

	c := s.Citation()
	assert.Equal(t, "t-2", c.ID)
	assert.Equal(t, "a moment", c.Text)
	assert.Equal(t, 0.75, c.Score)
	require.NotNil(t, c.TimestampSec)
	assert.Equal(t, 12.5, *c.TimestampSec)
	assert.Equal(t, "0:12", c.TimestampLabel)
}

func TestCitation_JSONShape(t *testing.T) {
	// Web citations must omit the timestamp fields entirely; this is
	// the persisted message shape consumed by the session store.
	web := Citation{ID: "w-1", Text: "some text", Score: 0.5}
	data, err := json.Marshal(web)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"w-1","text":"some text","score":0.5}`, string(data))

	video := Citation{ID: "t-1", Text: "a cue", Score: 1, TimestampSec: ts(62), TimestampLabel: "1:02"}
	data, err = json.Marshal(video)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"t-1","text":"a cue","score":1,"timestampSec":62,"timestampLabel":"1:02"}`, string(data))
}

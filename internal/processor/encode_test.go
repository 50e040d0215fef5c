package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LJTian/hntop/internal/collector"
)

func TestEncodeKeepsUTF8AndHTMLCharacters(t *testing.T) {
	res := Result{
		GeneratedAtUTC: "2024-01-01 00:00:00",
		Days:           7,
		MinVotes:       250,
		Stories: []collector.Story{
			{Title: "Ünïcode & <tags> 你好", Link: "https://example.com/?a=1&b=2", Votes: 300, AgeText: "2 hours ago"},
		},
	}

	out, err := Encode(res)
	require.NoError(t, err)

	want := `{"generated_at_utc":"2024-01-01 00:00:00","days":7,"min_votes":250,"stories":[{"title":"Ünïcode & <tags> 你好","link":"https://example.com/?a=1&b=2","votes":300,"age_text":"2 hours ago"}]}`
	assert.Equal(t, want, string(out))
}

func TestEncodeEmptyStoriesAsArray(t *testing.T) {
	out, err := Encode(Result{Stories: []collector.Story{}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"stories":[]`)
}

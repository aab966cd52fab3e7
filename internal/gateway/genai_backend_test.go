package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestTextContentsMapsRoles(t *testing.T) {
	contents := textContents(TextRequest{
		History: []Turn{
			{Role: "user", Text: "hello"},
			{Role: "model", Text: "hi there"},
		},
		Prompt: "status?",
	})

	require.Len(t, contents, 3)
	var roles, texts []string
	for _, c := range contents {
		require.Len(t, c.Parts, 1)
		roles = append(roles, c.Role)
		texts = append(texts, c.Parts[0].Text)
	}
	assert.Equal(t, []string{genai.RoleUser, genai.RoleModel, genai.RoleUser}, roles)
	assert.Equal(t, []string{"hello", "hi there", "status?"}, texts)
}

func TestTextContentsWithoutHistory(t *testing.T) {
	contents := textContents(TextRequest{Prompt: "audit"})
	require.Len(t, contents, 1)
	assert.Equal(t, genai.RoleUser, contents[0].Role)
}

package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRequiresProjectEndpoint(t *testing.T) {
	t.Setenv("PROJECT_ENDPOINT", "")
	t.Setenv("AGENT_ID", "asst_1")

	cmd := Command()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROJECT_ENDPOINT is not set")
}

func TestCommandRequiresAgentId(t *testing.T) {
	t.Setenv("PROJECT_ENDPOINT", "https://example.services.ai.azure.com/api/projects/research")
	t.Setenv("AGENT_ID", "")

	cmd := Command()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_ID is not set")
}

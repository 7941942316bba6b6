package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromClaims(t *testing.T) {
	scope, err := FromClaims(map[string]any{
		"sub":         "user-1",
		"workspaceId": "ws-1",
		"role":        "owner",
	})

	require.NoError(t, err)
	assert.Equal(t, "ws-1", scope.WorkspaceID)
	assert.Equal(t, "user-1", scope.UserID)
	assert.Equal(t, "owner", scope.Role)
}

func TestFromClaimsMissingWorkspace(t *testing.T) {
	_, err := FromClaims(map[string]any{
		"sub":  "user-1",
		"role": "owner",
	})

	assert.ErrorIs(t, err, ErrMissingWorkspace)
}

func TestFromClaimsWorkspaceWrongType(t *testing.T) {
	_, err := FromClaims(map[string]any{
		"sub":         "user-1",
		"workspaceId": 42,
	})

	assert.ErrorIs(t, err, ErrMissingWorkspace)
}

package tenant

import "errors"

// ErrMissingWorkspace means the authenticated principal has no workspace
// assigned. Callers must treat this as a hard stop; no store operation may
// be attempted on its behalf.
var ErrMissingWorkspace = errors.New("principal has no workspace")

// Scope is the explicit tenant context built once per authenticated request.
// Every data-access call takes a Scope; records are created with the Scope's
// workspace id regardless of what the caller supplied.
type Scope struct {
	WorkspaceID string
	UserID      string
	Role        string
}

// FromClaims resolves the acting principal's scope from its token claims.
func FromClaims(claims map[string]any) (Scope, error) {
	workspaceID, _ := claims["workspaceId"].(string)
	if workspaceID == "" {
		return Scope{}, ErrMissingWorkspace
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)

	return Scope{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
	}, nil
}

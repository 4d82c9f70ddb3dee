package utils

import (
	"context"

	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
)

// SessionFromContext returns the authenticated session placed in the
// request context by the auth middleware, or nil when unauthenticated.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session
}

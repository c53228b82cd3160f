package repository

import (
	"context"

	"github.com/jhoicas/integraprice-api/internal/domain/entity"
)

// SessionRepository persistencia de la sesión del usuario actual.
type SessionRepository interface {
	LoadSession(ctx context.Context) *entity.UserRecord
	SaveSession(ctx context.Context, user entity.UserRecord)
	ClearSession(ctx context.Context)
}

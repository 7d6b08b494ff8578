package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (credenciales y roles).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	// Create persiste el usuario y completa ID y CreatedAt. ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail busca por email exacto e incluye los roles.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	ListActive(ctx context.Context) ([]*entity.User, error)
	// AssignRole agrega el rol al usuario; idempotente.
	AssignRole(ctx context.Context, userID int64, role entity.Role) error
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios (pool o tx).
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// selectUser une los roles como arreglo ordenado; usuarios sin roles devuelven '{}'.
const selectUser = `
	SELECT u.id_usuario, u.nome_completo, u.email, COALESCE(u.telefone, ''), u.senha_hash, u.ativo, u.criado_em,
	       COALESCE(array_agg(p.nome ORDER BY p.nome) FILTER (WHERE p.nome IS NOT NULL), '{}') AS papeis
	FROM usuarios u
	LEFT JOIN usuarios_papeis up ON up.id_usuario = u.id_usuario
	LEFT JOIN papeis p ON p.id_papel = up.id_papel`

const groupUser = `
	GROUP BY u.id_usuario, u.nome_completo, u.email, u.telefone, u.senha_hash, u.ativo, u.criado_em`

// Create persiste un nuevo usuario activo y completa ID y CreatedAt.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (nome_completo, email, telefone, senha_hash, ativo)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id_usuario, criado_em`
	err := r.db.QueryRow(ctx, query,
		user.FullName, user.Email, user.Phone, user.PasswordHash, user.Active,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email exacto (sensible a mayúsculas), con roles.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, selectUser+` WHERE u.email = $1`+groupUser, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetByID obtiene un usuario activo por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, selectUser+` WHERE u.id_usuario = $1 AND u.ativo`+groupUser, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// ListActive lista los usuarios activos ordenados por ID.
func (r *UserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, selectUser+` WHERE u.ativo`+groupUser+` ORDER BY u.id_usuario`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// AssignRole vincula el rol al usuario. Reasignar un rol existente no falla.
func (r *UserRepo) AssignRole(ctx context.Context, userID int64, role entity.Role) error {
	query := `
		INSERT INTO usuarios_papeis (id_usuario, id_papel)
		SELECT $1, id_papel FROM papeis WHERE nome = $2
		ON CONFLICT (id_usuario, id_papel) DO NOTHING`
	tag, err := r.db.Exec(ctx, query, userID, string(role))
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("assign role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Sin fila: el rol no existe en papeis o ya estaba asignado.
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM papeis WHERE nome = $1)`, string(role)).Scan(&exists); err != nil {
			return fmt.Errorf("check role: %w", err)
		}
		if !exists {
			return fmt.Errorf("rol %q: %w", role, domain.ErrInvalidReference)
		}
	}
	return nil
}

func scanUser(row scanner) (*entity.User, error) {
	var u entity.User
	var roles []string
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.Active, &u.CreatedAt, &roles); err != nil {
		return nil, err
	}
	u.Roles = entity.NewRoleSet(roles...)
	return &u, nil
}

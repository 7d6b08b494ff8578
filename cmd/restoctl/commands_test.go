package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

type stubUsers struct {
	user     *entity.User
	assigned []entity.Role
}

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }
func (s *stubUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, nil
}
func (s *stubUsers) GetByID(context.Context, int64) (*entity.User, error) { return s.user, nil }
func (s *stubUsers) ListActive(context.Context) ([]*entity.User, error)   { return nil, nil }
func (s *stubUsers) AssignRole(_ context.Context, _ int64, r entity.Role) error {
	s.assigned = append(s.assigned, r)
	return nil
}

func TestGrantRole_AsignaAlUsuarioPorEmail(t *testing.T) {
	users := &stubUsers{user: &entity.User{ID: 3, Email: "ana@resto.com"}}

	u, err := grantRole(context.Background(), users, " ana@resto.com ", entity.RoleGerente)
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, []entity.Role{entity.RoleGerente}, users.assigned)
}

func TestGrantRole_EmailDesconocido(t *testing.T) {
	users := &stubUsers{}

	_, err := grantRole(context.Background(), users, "nadie@resto.com", entity.RoleBar)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, users.assigned)
}

func TestGrantRoleCmd_RolInvalido_NoConectaABaseDeDatos(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"grant-role", "--email", "a@b.com", "--role", "CHEF"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rol desconocido")
}

func TestGrantRoleCmd_FaltaEmail(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"grant-role", "--role", "GERENTE"})
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestOpenAPICmd_ImprimeSwagger(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"openapi"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
}

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/personnel-api/internal/domain/entity"
)

func TestRoleRepo_AddEsIdempotente(t *testing.T) {
	reg := integrationRegistry(t)
	users := reg.Users()
	roles := reg.Roles()
	ctx := context.Background()

	u := newTestUser(t, "role-add")
	require.NoError(t, users.Add(ctx, u))
	t.Cleanup(func() { _ = users.Delete(context.Background(), u.ID) })

	require.NoError(t, roles.Add(ctx, u.ID, entity.RoleUser))
	require.NoError(t, roles.Add(ctx, u.ID, entity.RoleUser),
		"asignar un rol ya presente es un no-op")

	got, err := roles.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Role{entity.RoleUser}, got)
}

func TestRoleRepo_DeleteQuitaSoloElRolDado(t *testing.T) {
	reg := integrationRegistry(t)
	users := reg.Users()
	roles := reg.Roles()
	ctx := context.Background()

	u := newTestUser(t, "role-del")
	require.NoError(t, users.Add(ctx, u))
	t.Cleanup(func() { _ = users.Delete(context.Background(), u.ID) })

	require.NoError(t, roles.Add(ctx, u.ID, entity.RoleAdmin, entity.RoleUser))
	require.NoError(t, roles.Delete(ctx, u.ID, entity.RoleAdmin))

	got, err := roles.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Role{entity.RoleUser}, got,
		"delete quita el rol indicado y conserva el resto")

	// Quitar un rol no asignado es un no-op.
	require.NoError(t, roles.Delete(ctx, u.ID, entity.RoleAdmin))
	got, err = roles.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Role{entity.RoleUser}, got)
}

func TestRoleRepo_GetForUsersAgrupaPorID(t *testing.T) {
	reg := integrationRegistry(t)
	users := reg.Users()
	roles := reg.Roles()
	ctx := context.Background()

	a := newTestUser(t, "rfu-a")
	b := newTestUser(t, "rfu-b")
	c := newTestUser(t, "rfu-c") // sin roles
	require.NoError(t, users.Add(ctx, a, b, c))
	t.Cleanup(func() { _ = users.Delete(context.Background(), a.ID, b.ID, c.ID) })

	require.NoError(t, roles.Add(ctx, a.ID, entity.RoleAdmin, entity.RoleUser))
	require.NoError(t, roles.Add(ctx, b.ID, entity.RoleUser))

	got, err := roles.GetForUsers(ctx, []int{a.ID, b.ID, c.ID})
	require.NoError(t, err)

	assert.Equal(t, []entity.Role{entity.RoleAdmin, entity.RoleUser}, got[a.ID])
	assert.Equal(t, []entity.Role{entity.RoleUser}, got[b.ID])
	_, ok := got[c.ID]
	assert.False(t, ok, "un usuario sin filas no aparece en el mapa")
}

func TestRoleRepo_GetForUsersVacio(t *testing.T) {
	reg := integrationRegistry(t)

	got, err := reg.Roles().GetForUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got, "sin ids la consulta ni se lanza y el mapa viene vacío")
}

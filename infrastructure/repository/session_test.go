package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

func TestFileSessionRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contoso", "session.json")
	repo := NewFileSessionRepository(path)

	session := &domain.Session{
		Token:       "tok-abc",
		Role:        domain.RoleAdministrator,
		DisplayName: "Alice",
	}

	require.NoError(t, repo.Save(session))

	loaded, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileSessionRepository_Get(t *testing.T) {
	t.Run("Arquivo ausente devolve nil sem erro", func(t *testing.T) {
		repo := NewFileSessionRepository(filepath.Join(t.TempDir(), "nao-existe.json"))

		session, err := repo.Get()
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Arquivo corrompido equivale a nenhuma sessão", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{nao é json"), 0o600))

		repo := NewFileSessionRepository(path)

		session, err := repo.Get()
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Sessão sem token equivale a nenhuma sessão", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"token":"","role":"administrador"}`), 0o600))

		repo := NewFileSessionRepository(path)

		session, err := repo.Get()
		assert.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestFileSessionRepository_Save(t *testing.T) {
	repo := NewFileSessionRepository(filepath.Join(t.TempDir(), "session.json"))

	assert.Error(t, repo.Save(nil))
	assert.Error(t, repo.Save(&domain.Session{Role: domain.RoleCustomer}))
}

func TestFileSessionRepository_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileSessionRepository(path)

	// Remover sem arquivo não é erro
	assert.NoError(t, repo.Delete())

	require.NoError(t, repo.Save(&domain.Session{Token: "tok", Role: domain.RoleCustomer}))
	require.NoError(t, repo.Delete())

	session, err := repo.Get()
	assert.NoError(t, err)
	assert.Nil(t, session)
}

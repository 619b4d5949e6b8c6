package repository

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SessionRepository persiste os campos da sessão entre execuções do cliente.
// É o único estado que sobrevive a um reinício do processo.
type SessionRepository interface {
	Get() (*domain.Session, error)
	Save(session *domain.Session) error
	Delete() error
}

// FileSessionRepository grava a sessão como JSON em um arquivo local com
// permissão restrita ao usuário
type FileSessionRepository struct {
	path string
}

func NewFileSessionRepository(path string) SessionRepository {
	return &FileSessionRepository{path: path}
}

// Get devolve a sessão persistida, ou nil quando não existe nenhuma
func (r *FileSessionRepository) Get() (*domain.Session, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o arquivo de sessão")
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Arquivo corrompido equivale a nenhuma sessão persistida
		return nil, nil
	}

	if session.Token == "" {
		return nil, nil
	}

	return &session, nil
}

// Save grava a sessão no disco, criando o diretório quando necessário
func (r *FileSessionRepository) Save(session *domain.Session) error {
	if session == nil || session.Token == "" {
		return errors.New("sessão inválida: token vazio")
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "erro ao criar o diretório de sessão")
		}
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "erro ao codificar a sessão")
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return errors.Wrap(err, "erro ao gravar o arquivo de sessão")
	}

	return nil
}

// Delete remove as credenciais persistidas; a ausência do arquivo não é erro
func (r *FileSessionRepository) Delete() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "erro ao remover o arquivo de sessão")
	}
	return nil
}

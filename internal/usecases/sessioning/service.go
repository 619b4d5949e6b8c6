package sessioning

import (
	"context"
	"strings"
	"sync"

	"github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso"
	"github.com/vfg2006/contoso-dashboard-client/infrastructure/repository"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/apierrors"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
)

// SessionManager é o dono da sessão do cliente: restauração na inicialização,
// login, cadastro e logout. Todo consumidor recebe a sessão explicitamente a
// partir daqui; não existe acesso ambiente de dentro do grafo de chamadas.
type SessionManager interface {
	Restore() *domain.Session
	Current() *domain.Session
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Register(ctx context.Context, profile domain.RegisterProfile) error
	Logout()
}

type Service struct {
	repo       repository.SessionRepository
	integrator contoso.Integrator

	mu      sync.Mutex
	current *domain.Session
}

func NewService(repo repository.SessionRepository, integrator contoso.Integrator) *Service {
	return &Service{
		repo:       repo,
		integrator: integrator,
	}
}

// Restore recupera a sessão persistida sem tocar a rede. Chamada uma única
// vez na inicialização do processo, pelo wiring do cmd.
func (s *Service) Restore() *domain.Session {
	session, err := s.repo.Get()
	if err != nil {
		log.L.WithError(err).Warn("sessão: falha ao ler credenciais persistidas")
		return nil
	}

	if session == nil {
		return nil
	}

	// Um token já vencido não serve para nenhuma chamada; descartar aqui
	// evita um ciclo inteiro de fetch só para receber o 401
	if tokenExpired(session.Token) {
		log.L.Info("sessão: token persistido expirado, descartando")
		if err := s.repo.Delete(); err != nil {
			log.L.WithError(err).Warn("sessão: falha ao remover credenciais expiradas")
		}
		return nil
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return session
}

// Current devolve a sessão ativa, ou nil quando deslogado
func (s *Service) Current() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Login troca credenciais por uma sessão e a persiste para a próxima
// execução. Falhas de credencial e de transporte chegam ao chamador sem
// nenhuma tentativa automática de repetição.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apierrors.New(apierrors.ErrCredenciaisInvalidas, apierrors.CodeInvalidCredentials, "usuário e senha são obrigatórios")
	}

	session, err := s.integrator.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(session); err != nil {
		// A sessão em memória segue utilizável; apenas não sobrevive a um
		// reinício do processo
		log.ForContext(ctx).WithError(err).Warn("sessão: falha ao persistir credenciais")
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"user_role": string(session.Role),
		"user_name": session.DisplayName,
	}).Info("sessão: login concluído")

	return session, nil
}

// Register cria uma conta de cliente. O cadastro não autentica: em caso de
// sucesso o chamador ainda precisa fazer login separadamente.
func (s *Service) Register(ctx context.Context, profile domain.RegisterProfile) error {
	if strings.TrimSpace(profile.FirstName) == "" ||
		strings.TrimSpace(profile.LastName) == "" ||
		strings.TrimSpace(profile.Email) == "" ||
		profile.Password == "" {
		return apierrors.New(apierrors.ErrDadosInvalidos, apierrors.CodeValidation, "nome, sobrenome, email e senha são obrigatórios")
	}

	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))

	return s.integrator.Register(ctx, profile)
}

// Logout limpa as credenciais persistidas e a sessão em memória,
// incondicionalmente. Nunca falha: um erro ao remover o arquivo é apenas
// registrado.
func (s *Service) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.Delete(); err != nil {
		log.L.WithError(err).Warn("sessão: falha ao limpar credenciais persistidas")
	}

	log.L.Info("sessão: logout efetuado")
}

package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Códigos de erro estáveis expostos à camada de apresentação
const (
	// Erros de autenticação (AUTH)
	CodeInvalidCredentials = "AUTH_001" // Credenciais inválidas no login
	CodeSessionExpired     = "AUTH_002" // Token rejeitado ou expirado em meio à sessão
	CodeForbidden          = "AUTH_003" // Perfil sem acesso à operação

	// Erros de validação (VAL)
	CodeValidation = "VAL_001" // Cadastro rejeitado pelo servidor

	// Erros de comunicação (SRV)
	CodeUnreachable   = "SRV_001" // Falha de transporte ou erro do servidor
	CodeOrchestration = "SRV_002" // Falha agregada do fan-out do painel
)

// Erros base da taxonomia do cliente
var (
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrSessaoExpirada       = errors.New("sessão expirada: token rejeitado pelo servidor")
	ErrPerfilSemAcesso      = errors.New("perfil sem acesso a esta operação")
	ErrDadosInvalidos       = errors.New("dados de cadastro inválidos")
	ErrServidorIndisponivel = errors.New("não foi possível comunicar com o servidor Contoso")
)

// APIError envolve um erro base com código estável e detalhes legíveis
type APIError struct {
	Err     error  // Erro base da taxonomia
	Code    string // Código estável para a apresentação
	Details string // Detalhe adicional (ex.: motivo de validação do servidor)
}

// Error implementa a interface error
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *APIError) Unwrap() error {
	return e.Err
}

// New cria um erro de API com código e detalhes
func New(baseErr error, code string, details string) *APIError {
	return &APIError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// FromStatusCode classifica uma resposta HTTP não bem-sucedida na taxonomia
// do cliente. Qualquer resposta da classe 401 é tratada uniformemente como
// sessão expirada, independente do endpoint que a produziu.
func FromStatusCode(status int, details string) error {
	switch {
	case status == http.StatusUnauthorized:
		return New(ErrSessaoExpirada, CodeSessionExpired, details)
	case status == http.StatusForbidden:
		return New(ErrPerfilSemAcesso, CodeForbidden, details)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return New(ErrDadosInvalidos, CodeValidation, details)
	default:
		return New(ErrServidorIndisponivel, CodeUnreachable, details)
	}
}

// CodeOf extrai o código estável de um erro, ou SRV_001 quando desconhecido
func CodeOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return CodeUnreachable
}

// IsSessionExpired verifica se o erro indica sessão expirada (classe 401)
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessaoExpirada)
}

// IsCredentialsError verifica se o erro é de credenciais de login
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrCredenciaisInvalidas)
}

// IsValidationError verifica se o erro é de validação de cadastro
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDadosInvalidos)
}

// IsUnreachable verifica se o erro é de transporte ou falha do servidor
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrServidorIndisponivel)
}

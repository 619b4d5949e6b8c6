package sessioning

import (
	"github.com/vfg2006/contoso-dashboard-client/pkg/apierrors"
)

// Erros de sessão expostos ao chamador. A taxonomia base vive em
// pkg/apierrors; aqui ficam apenas os atalhos usados pela apresentação.

// IsCredentialsError verifica se o login falhou por usuário/senha incorretos
func IsCredentialsError(err error) bool {
	return apierrors.IsCredentialsError(err)
}

// IsValidationError verifica se o cadastro foi rejeitado pelo servidor
func IsValidationError(err error) bool {
	return apierrors.IsValidationError(err)
}

// IsServerUnavailable verifica se a falha foi de transporte ou do servidor
func IsServerUnavailable(err error) bool {
	return apierrors.IsUnreachable(err)
}

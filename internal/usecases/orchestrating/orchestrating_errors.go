package orchestrating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/contoso-dashboard-client/pkg/apierrors"
)

var (
	// ErrPerfilSemAcesso indica que a sessão não tem o perfil exigido pelo
	// painel; a chamada não gera nenhum tráfego de rede
	ErrPerfilSemAcesso = apierrors.ErrPerfilSemAcesso

	// ErrGeracaoDescartada indica que o resultado chegou depois de uma
	// geração mais nova ter iniciado e foi suprimido na borda de aplicação
	ErrGeracaoDescartada = errors.New("resultado de geração obsoleta descartado")
)

// OrchestrationError é a falha agregada do fan-out: qualquer leitura que
// falhe derruba a geração inteira, nunca há snapshot parcial.
type OrchestrationError struct {
	Err        error  // Primeira falha observada
	Dataset    string // Endpoint que falhou
	Generation int
}

func (e *OrchestrationError) Error() string {
	if e.Dataset != "" {
		return fmt.Sprintf("geração %d falhou em %s: %s", e.Generation, e.Dataset, e.Err.Error())
	}
	return fmt.Sprintf("geração %d falhou: %s", e.Generation, e.Err.Error())
}

func (e *OrchestrationError) Unwrap() error {
	return e.Err
}

// IsUnauthorized verifica se a geração caiu por token rejeitado ou expirado
func IsUnauthorized(err error) bool {
	return apierrors.IsSessionExpired(err)
}

// IsStaleGeneration verifica se o resultado foi suprimido por já existir
// uma geração mais nova iniciada
func IsStaleGeneration(err error) bool {
	return errors.Is(err, ErrGeracaoDescartada)
}

// IsUnreachable verifica se a geração caiu por falha de transporte/servidor.
// O chamador pode oferecer nova tentativa manual; nunca há retry automático.
func IsUnreachable(err error) bool {
	return apierrors.IsUnreachable(err)
}

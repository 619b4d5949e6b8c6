package sessioning

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired verifica se um token persistido já venceu antes de reutilizá-lo.
// A leitura é sem verificação de assinatura: o cliente não possui a chave do
// servidor, e a autorização efetiva continua sendo do servidor. Tokens opacos
// (não JWT, ou sem claim exp) são considerados válidos até o servidor dizer o
// contrário.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	expiresAt, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return false
	}

	return expiresAt.Before(time.Now())
}

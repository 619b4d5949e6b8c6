package contosoclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/apierrors"
)

// Login troca usuário e senha por um token de acesso no POST /token.
// A API espera application/x-www-form-urlencoded, no formato do fluxo de
// senha do OAuth2.
func (c *ContosoClient) Login(ctx context.Context, username, password string) (*contosodomain.TokenResponse, error) {
	reqURL, err := c.buildURL("/token", nil)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de login")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.New(apierrors.ErrServidorIndisponivel, apierrors.CodeUnreachable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.New(apierrors.ErrServidorIndisponivel, apierrors.CodeUnreachable, err.Error())
	}

	// No login uma resposta 401 significa usuário ou senha incorretos, não
	// sessão expirada: ainda não existe sessão
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return nil, apierrors.New(apierrors.ErrCredenciaisInvalidas, apierrors.CodeInvalidCredentials, extractDetail(body))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apierrors.FromStatusCode(resp.StatusCode, extractDetail(body))
	}

	var tokenResp contosodomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de login")
	}

	if tokenResp.AccessToken == "" {
		return nil, apierrors.New(apierrors.ErrServidorIndisponivel, apierrors.CodeUnreachable, "resposta de login sem access_token")
	}

	return &tokenResp, nil
}

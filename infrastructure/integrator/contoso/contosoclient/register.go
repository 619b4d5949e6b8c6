package contosoclient

import (
	"bytes"
	"context"
	"net/http"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/apierrors"
)

// Register cria uma conta de cliente no POST /register. O cadastro não
// autentica: depois do sucesso o chamador ainda precisa fazer login.
func (c *ContosoClient) Register(ctx context.Context, req contosodomain.RegisterRequest) error {
	reqURL, err := c.buildURL("/register", nil)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "erro ao codificar o cadastro")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição de cadastro")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apierrors.New(apierrors.ErrServidorIndisponivel, apierrors.CodeUnreachable, err.Error())
	}
	defer resp.Body.Close()

	if _, err := handleResponse(resp); err != nil {
		return err
	}

	return nil
}

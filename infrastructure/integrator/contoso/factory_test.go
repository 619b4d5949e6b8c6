package contoso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

func TestFactorySession(t *testing.T) {
	tests := []struct {
		name     string
		resp     *contosodomain.TokenResponse
		validate func(t *testing.T, session *domain.Session, err error)
	}{
		{
			name: "Perfil administrador",
			resp: &contosodomain.TokenResponse{AccessToken: "tok", Role: "administrador", Name: "Alice"},
			validate: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				assert.True(t, session.IsAdministrator())
				assert.Equal(t, "Alice", session.DisplayName)
			},
		},
		{
			name: "Perfil cliente",
			resp: &contosodomain.TokenResponse{AccessToken: "tok", Role: "cliente", Name: "Ana"},
			validate: func(t *testing.T, session *domain.Session, err error) {
				require.NoError(t, err)
				assert.True(t, session.IsCustomer())
			},
		},
		{
			name: "Perfil desconhecido é rejeitado na fronteira",
			resp: &contosodomain.TokenResponse{AccessToken: "tok", Role: "gerente"},
			validate: func(t *testing.T, session *domain.Session, err error) {
				assert.Nil(t, session)
				assert.ErrorContains(t, err, "perfil desconhecido")
			},
		},
		{
			name: "Resposta sem token",
			resp: &contosodomain.TokenResponse{Role: "cliente"},
			validate: func(t *testing.T, session *domain.Session, err error) {
				assert.Nil(t, session)
				assert.Error(t, err)
			},
		},
		{
			name: "Resposta nula",
			resp: nil,
			validate: func(t *testing.T, session *domain.Session, err error) {
				assert.Nil(t, session)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := FactorySession(tt.resp)
			tt.validate(t, session, err)
		})
	}
}

func TestFactoryProducts(t *testing.T) {
	rows := []contosodomain.Producto{
		{ProductKey: 1, ProductName: "Mountain Bike", Category: "Bikes", Subcategory: "Mountain", Brand: "Contoso", UnitPrice: 1200},
	}

	products := FactoryProducts(rows)

	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ProductKey)
	assert.Equal(t, "Mountain Bike", products[0].Name)
	assert.Equal(t, 1200.0, products[0].UnitPrice)

	assert.NotNil(t, FactoryProducts(nil))
	assert.Empty(t, FactoryProducts(nil))
}

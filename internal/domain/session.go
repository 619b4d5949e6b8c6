package domain

// Role representa o perfil de acesso retornado pela API no login
type Role string

const (
	RoleAdministrator Role = "administrador"
	RoleCustomer      Role = "cliente"
)

// Session guarda as credenciais ativas do usuário no cliente.
// Invariante: Token não vazio se e somente se a sessão está autenticada.
type Session struct {
	Token       string `json:"token"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}

// LoggedIn indica se a sessão está autenticada
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// IsAdministrator indica se a sessão pertence a um administrador
func (s *Session) IsAdministrator() bool {
	return s.LoggedIn() && s.Role == RoleAdministrator
}

// IsCustomer indica se a sessão pertence a um cliente da loja
func (s *Session) IsCustomer() bool {
	return s.LoggedIn() && s.Role == RoleCustomer
}

// RegisterProfile contém os dados de cadastro de um novo cliente
type RegisterProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

package domain

// TokenResponse é a resposta do POST /token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Name        string `json:"name"`
}

// RegisterRequest é o corpo JSON do POST /register
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ErrorDetail é o corpo de erro padrão da API (FastAPI expõe `detail`)
type ErrorDetail struct {
	Detail string `json:"detail"`
}

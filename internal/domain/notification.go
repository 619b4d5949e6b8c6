package domain

// Severity classifica o alerta exibido no sino do painel
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// Notification é um alerta de sistema mantido apenas em memória.
// O cliente somente armazena, lista e remove; a criação pertence à fonte
// de eventos externa.
type Notification struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
	CreatedAgo string   `json:"created_ago"`
}

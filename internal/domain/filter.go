package domain

import "fmt"

// DateRangeFilter é o recorte de datas aplicado uniformemente a todas as
// leituras de datasets do painel. Os valores são os aceitos pelo parâmetro
// `dias` da API.
type DateRangeFilter string

const (
	Last7Days  DateRangeFilter = "7d"
	Last30Days DateRangeFilter = "30d"
	YearToDate DateRangeFilter = "YTD"
	AllTime    DateRangeFilter = "ALL"
)

// DefaultDateRange é o recorte aplicado antes de qualquer escolha do usuário
const DefaultDateRange = Last30Days

// AvailableDateRanges lista os recortes na ordem exibida pelo painel
var AvailableDateRanges = []DateRangeFilter{Last7Days, Last30Days, YearToDate, AllTime}

// QueryValue retorna o valor enviado no parâmetro `dias`
func (f DateRangeFilter) QueryValue() string {
	return string(f)
}

// Valid indica se o recorte pertence ao conjunto aceito pela API
func (f DateRangeFilter) Valid() bool {
	switch f {
	case Last7Days, Last30Days, YearToDate, AllTime:
		return true
	}
	return false
}

// ParseDateRange converte a entrada do usuário em um recorte de datas
func ParseDateRange(s string) (DateRangeFilter, error) {
	f := DateRangeFilter(s)
	if !f.Valid() {
		return "", fmt.Errorf("recorte de datas inválido: %q", s)
	}
	return f, nil
}

package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonth interpreta um período mensal no formato yyyy-MM usado pela
// série financeira
func ParseMonth(monthStr string) (*time.Time, error) {
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return nil, err
	}
	return &month, nil
}

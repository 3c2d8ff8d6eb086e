package webhook

import (
	"database/sql"
	"time"
)

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

// Asaas envia datas como "2006-01-02" e timestamps como RFC3339.
func nullDate(value string) sql.NullTime {
	if value == "" {
		return sql.NullTime{}
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return sql.NullTime{Time: parsed, Valid: true}
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return sql.NullTime{Time: parsed, Valid: true}
	}
	return sql.NullTime{}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

package report

import (
	"bytes"
	"checkrrhh-backend/internal/model"
	"encoding/csv"
	"strings"
)

const NoCompany = "No company"

var Header = []string{"Company", "Date", "Employee", "Badge", "Kind", "Time", "Status"}

// DisplayKind renders a kind for humans: "lunch-out" becomes "lunch out".
func DisplayKind(k model.EventKind) string {
	return strings.ReplaceAll(string(k), "-", " ")
}

func Row(e model.AttendanceEvent) []string {
	company := e.CompanyName
	if company == "" {
		company = NoCompany
	}
	return []string{company, e.Date, e.UserName, e.Badge, DisplayKind(e.Kind), e.Time, string(e.Status)}
}

// ToDelimitedText renders events as delimited text with a header row.
// Fields holding the delimiter, quotes or line breaks are quoted.
func ToDelimitedText(events []model.AttendanceEvent, delimiter rune) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if delimiter != 0 {
		w.Comma = delimiter
	}
	if err := w.Write(Header); err != nil {
		return "", err
	}
	for _, e := range events {
		if err := w.Write(Row(e)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

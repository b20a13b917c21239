package report

import (
	"checkrrhh-backend/internal/model"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
)

func TestToDelimitedTextRoundTrip(t *testing.T) {
	events := sampleEvents()
	events[0].CompanyName = "Demo Company"
	text, err := ToDelimitedText(events, ',')
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	if len(records) != len(events)+1 {
		t.Fatalf("expected %d rows, got %d", len(events)+1, len(records))
	}
	if !reflect.DeepEqual(records[0], Header) {
		t.Fatalf("unexpected header %v", records[0])
	}
	for i, e := range events {
		if !reflect.DeepEqual(records[i+1], Row(e)) {
			t.Fatalf("row %d: got %v want %v", i, records[i+1], Row(e))
		}
	}
	if records[1][0] != "Demo Company" || records[2][0] != NoCompany {
		t.Fatalf("unexpected company columns %q %q", records[1][0], records[2][0])
	}
	if records[2][4] != "lunch out" {
		t.Fatalf("expected display kind 'lunch out', got %q", records[2][4])
	}
}

func TestToDelimitedTextQuotesDelimiter(t *testing.T) {
	events := []model.AttendanceEvent{{
		CompanyName: "Acme, Inc.",
		UserName:    `Ana "La Jefa" Diaz`,
		Date:        "2026-03-01",
		Kind:        model.KindEntry,
		Time:        "08:00",
		Status:      model.StatusNormal,
	}}
	text, err := ToDelimitedText(events, ',')
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(text, `"Acme, Inc."`) {
		t.Fatalf("company with comma not quoted: %s", text)
	}

	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	if records[1][0] != "Acme, Inc." || records[1][2] != `Ana "La Jefa" Diaz` {
		t.Fatalf("fields not preserved: %v", records[1])
	}
}

func TestToDelimitedTextCustomDelimiter(t *testing.T) {
	text, err := ToDelimitedText(sampleEvents()[:1], ';')
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if lines[0] != "Company;Date;Employee;Badge;Kind;Time;Status" {
		t.Fatalf("unexpected header line %q", lines[0])
	}
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = ';'
	records, err := r.ReadAll()
	if err != nil || len(records) != 2 {
		t.Fatalf("parse back: %v (%d rows)", err, len(records))
	}
}

func TestEmptyExportHasHeaderOnly(t *testing.T) {
	text, err := ToDelimitedText(nil, 0)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if text != "Company,Date,Employee,Badge,Kind,Time,Status\n" {
		t.Fatalf("unexpected output %q", text)
	}
}

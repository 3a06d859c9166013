package handlers

import (
	"testing"
	"time"
)

func TestParseDueDateFormats(t *testing.T) {
	due, err := parseDueDate("2024-01-01")
	if err != nil {
		t.Fatalf("calendar date: %v", err)
	}
	if !due.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", due)
	}

	due, err = parseDueDate("2024-01-01T15:04:05Z")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if due.Hour() != 15 {
		t.Fatalf("unexpected time: %v", due)
	}

	if _, err := parseDueDate("not-a-date"); err == nil {
		t.Fatalf("expected parse failure")
	}
	if _, err := parseDueDate("2024-13-45"); err == nil {
		t.Fatalf("expected out-of-range failure")
	}
}

package domain

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(DateFormat, value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return date
}

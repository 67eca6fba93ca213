package report

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	t.Run("parses a valid month", func(t *testing.T) {
		month, err := ParseMonth("2024-03")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if month.Year != 2024 || month.Month != time.March {
			t.Errorf("expected 2024 March, got %d %s", month.Year, month.Month)
		}
	})

	t.Run("rejects an invalid month", func(t *testing.T) {
		if _, err := ParseMonth("2024-13"); err == nil {
			t.Error("expected error for month 13")
		}
		if _, err := ParseMonth("march 2024"); err == nil {
			t.Error("expected error for non-numeric input")
		}
	})

	t.Run("round-trips through String", func(t *testing.T) {
		month, err := ParseMonth("2024-03")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := month.String(); got != "2024-03" {
			t.Errorf("expected 2024-03, got %s", got)
		}
	})
}

func TestMonthPrevious(t *testing.T) {
	t.Run("steps back within a year", func(t *testing.T) {
		previous := Month{Year: 2024, Month: time.March}.Previous()
		if previous.Year != 2024 || previous.Month != time.February {
			t.Errorf("expected 2024 February, got %d %s", previous.Year, previous.Month)
		}
	})

	t.Run("rolls the year over at January", func(t *testing.T) {
		previous := Month{Year: 2024, Month: time.January}.Previous()
		if previous.Year != 2023 || previous.Month != time.December {
			t.Errorf("expected 2023 December, got %d %s", previous.Year, previous.Month)
		}
	})
}

func TestMonthNext(t *testing.T) {
	t.Run("rolls the year over at December", func(t *testing.T) {
		next := Month{Year: 2023, Month: time.December}.Next()
		if next.Year != 2024 || next.Month != time.January {
			t.Errorf("expected 2024 January, got %d %s", next.Year, next.Month)
		}
	})
}

func TestMonthContains(t *testing.T) {
	month := Month{Year: 2024, Month: time.March}

	t.Run("contains days of the month", func(t *testing.T) {
		first := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
		if !month.Contains(first) || !month.Contains(last) {
			t.Error("expected first and last day of March to be contained")
		}
	})

	t.Run("excludes neighboring months", func(t *testing.T) {
		if month.Contains(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected February day to be excluded")
		}
		if month.Contains(time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected same month of another year to be excluded")
		}
	})
}

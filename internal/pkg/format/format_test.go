package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"thousand lira", 1000, "TRY", "1.000,00 TRY"},
		{"small amount", 7.5, "EUR", "7,50 EUR"},
		{"zero", 0, "EUR", "0,00 EUR"},
		{"millions with cents", 1234567.891, "try", "1.234.567,89 TRY"},
		{"exact hundreds", 100, "EUR", "100,00 EUR"},
		{"negative", -2500.5, "EUR", "-2.500,50 EUR"},
		{"no currency", 45, "", "45,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.currency))
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC)

	assert.Equal(t, "07.03.2026", FormatDate(ts))
	assert.Equal(t, "07.03.2026 09:05", FormatDateTime(ts))
	assert.Equal(t, "-", FormatDate(time.Time{}))
	assert.Equal(t, "-", FormatDateTime(time.Time{}))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 dk", FormatDuration(45))
	assert.Equal(t, "2 sa", FormatDuration(120))
	assert.Equal(t, "1 sa 35 dk", FormatDuration(95))
	assert.Equal(t, "-", FormatDuration(0))
}

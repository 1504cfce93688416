// Package format - форматирование сумм и дат для страниц сайта (локаль tr-TR).
package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	thousandsSep = "."
	decimalSep   = ","

	DateLayout     = "02.01.2006"
	DateTimeLayout = "02.01.2006 15:04"
)

// FormatCurrency - сумма в формате tr-TR с кодом валюты: 1000, "TRY" -> "1.000,00 TRY"
func FormatCurrency(amount float64, currency string) string {
	s := FormatAmount(amount)
	if currency == "" {
		return s
	}
	return s + " " + strings.ToUpper(currency)
}

// FormatAmount - число с двумя знаками после запятой и группировкой тысяч
func FormatAmount(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))

	whole := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	if negative && cents != 0 {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(whole))
	b.WriteString(decimalSep)
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))

	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	parts := []string{digits[:head]}
	for i := head; i < len(digits); i += 3 {
		parts = append(parts, digits[i:i+3])
	}
	return strings.Join(parts, thousandsSep)
}

// FormatDate - дата в формате дд.мм.гггг; нулевое время -> "-"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

// FormatDateTime - дата и время в формате дд.мм.гггг чч:мм
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateTimeLayout)
}

// FormatDuration - длительность поездки в минутах: 95 -> "1 sa 35 dk"
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return strconv.Itoa(m) + " dk"
	case m == 0:
		return strconv.Itoa(h) + " sa"
	default:
		return strconv.Itoa(h) + " sa " + strconv.Itoa(m) + " dk"
	}
}

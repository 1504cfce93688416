package usecase

import (
	"crypto/rand"
	"strings"
)

const (
	reservationCodePrefix = "CT-"
	reservationCodeLength = 8
	// без 0/O и 1/I, чтобы код легко диктовать по телефону
	reservationCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateReservationCode - код вида CT-XXXXXXXX. Алфавит из 32 символов делит 256 нацело,
// поэтому каждый символ равновероятен.
func GenerateReservationCode() string {
	var buf [reservationCodeLength]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}

	var b strings.Builder
	b.Grow(len(reservationCodePrefix) + reservationCodeLength)
	b.WriteString(reservationCodePrefix)
	for _, v := range buf {
		b.WriteByte(reservationCodeAlphabet[int(v)%len(reservationCodeAlphabet)])
	}
	return b.String()
}

// NormalizeReservationCode - код из пользовательского ввода без окружающих пробелов.
// Регистр не меняется: код непрозрачен и ищется как есть.
func NormalizeReservationCode(code string) string {
	return strings.TrimSpace(code)
}

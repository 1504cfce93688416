package usecase

import (
	"math"
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/pkg/errors"
)

// transferDateLayouts - принимаемые форматы даты трансфера (date и datetime-local)
var transferDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

func parseTransferDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range transferDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// invalidField - 400 с указанием поля, в формате ошибок валидатора
func invalidField(field, reason string) error {
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"fields": map[string]interface{}{field: reason},
	})
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	phonePattern  = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{4,39}$`)
	flightPattern = regexp.MustCompile(`^[A-Z0-9]{2,3} ?[0-9]{1,5}[A-Z]?$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем json-имена полей, как их видит клиент; для форм - form-имена
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	mustRegister("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	// Номер рейса IATA: код перевозчика и номер, пробел между ними необязателен
	mustRegister("flight", func(fl validator.FieldLevel) bool {
		return flightPattern.MatchString(fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

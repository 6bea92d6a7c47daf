package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	expiryPattern  = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	zipCodePattern = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
)

// cardnumber: 12 to 19 digits once spaces and dashes are removed. No Luhn check.
var cardNumberValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	digits := normalizeCardNumber(fl.Field().String())
	return len(digits) >= 12 && len(digits) <= 19
}

// expiry: MM/YY, format only.
var expiryValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	return expiryPattern.MatchString(fl.Field().String())
}

var zipCodeValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	return zipCodePattern.MatchString(fl.Field().String())
}

// RegisterValidators installs the checkout rules on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("binding validator is not go-playground/validator")
	}

	rules := map[string]validator.Func{
		"cardnumber": cardNumberValidatorFunc,
		"expiry":     expiryValidatorFunc,
		"zipcode":    zipCodeValidatorFunc,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// normalizeCardNumber strips spaces and dashes. It returns "" when anything
// other than digits remains.
func normalizeCardNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
		default:
			return ""
		}
	}
	return b.String()
}

// maskCard keeps the last four digits only.
func maskCard(digits string) string {
	if len(digits) < 4 {
		return "****"
	}
	return "**** " + digits[len(digits)-4:]
}

// MaskEmail keeps the first character of the local part and the domain,
// e.g. "j***@example.com". Used wherever an address reaches the logs.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// fieldErrors flattens binding errors into field -> failed rule.
func fieldErrors(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

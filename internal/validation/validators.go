package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"

	"blue-star-api/internal/domain"
)

// Error describe una falla de validacion con su codigo de taxonomia.
// Los validadores nunca lanzan panics ni mutan su entrada.
type Error struct {
	Code    domain.ErrorCode
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	nameRegexp   = regexp.MustCompile(`^[A-Za-z' -]+(?: [A-Za-z' -]+)*$`)
	stringRegexp = regexp.MustCompile(`^[ A-Za-z]+$`)
)

const passwordSymbols = "#?!@$%^&*-"

// IsEmailValid valida la forma del email.
func IsEmailValid(email string) bool {
	return validation.Validate(email, validation.Required, is.Email) == nil
}

// IsPasswordValid exige minimo 8 caracteres con mayuscula, minuscula,
// digito y un simbolo del set fijo.
func IsPasswordValid(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// IsPhoneNumberValid acepta numeros moviles internacionales con o sin
// prefijo +. Sin prefijo se asume region US.
func IsPhoneNumberValid(number string) bool {
	number = strings.TrimSpace(number)
	if number == "" {
		return false
	}
	region := "US"
	if strings.HasPrefix(number, "+") {
		region = ""
	}
	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(parsed)
}

// IsStringValid acepta solo caracteres alfabeticos y espacios. Se usa
// para nombres de categorias e items.
func IsStringValid(str string) bool {
	return str != "" && stringRegexp.MatchString(str)
}

// IsNameValid acepta nombres de persona con apostrofes y guiones.
func IsNameValid(name string) bool {
	return name != "" && nameRegexp.MatchString(name)
}

// ParseID convierte un id a entero positivo.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// IsIDValid indica si el valor es coercible a un id valido.
func IsIDValid(raw string) bool {
	_, ok := ParseID(raw)
	return ok
}

// ValidateRegistration aplica el pipeline completo de registro sobre un
// payload ya saneado. Devuelve nil cuando la entrada es valida.
func ValidateRegistration(reg domain.Registration) *Error {
	required := []struct {
		name  string
		value string
	}{
		{"email", reg.Email},
		{"password", reg.Password},
		{"firstName", reg.FirstName},
		{"lastName", reg.LastName},
		{"phoneNumber", reg.PhoneNumber},
		{"gender", reg.Gender},
	}
	for _, field := range required {
		if field.value == "" {
			return &Error{
				Code:    domain.CodeMissingFields,
				Message: "Missing required field: " + field.name,
			}
		}
	}

	if !IsNameValid(reg.FirstName) || !IsNameValid(reg.LastName) {
		return &Error{
			Code:    domain.CodeValidationErr,
			Message: "Name contains non-alphabetical characters",
		}
	}

	if !domain.UserType(reg.UserType).Valid() {
		return &Error{Code: domain.CodeInvalidType, Message: "Invalid user type"}
	}
	if !domain.Gender(reg.Gender).Valid() {
		return &Error{Code: domain.CodeInvalidType, Message: "Invalid gender"}
	}

	if !IsEmailValid(reg.Email) {
		return &Error{Code: domain.CodeValidationErr, Message: "Invalid email format"}
	}
	if !IsPasswordValid(reg.Password) {
		return &Error{Code: domain.CodeValidationErr, Message: "Invalid password format"}
	}
	if !IsPhoneNumberValid(reg.PhoneNumber) {
		return &Error{Code: domain.CodeValidationErr, Message: "Invalid phone number format"}
	}

	switch domain.UserType(reg.UserType) {
	case domain.UserTypeVolunteer:
		if reg.Branch != "" || reg.AddressLineOne != "" || reg.AddressLineTwo != "" ||
			reg.Country != "" || reg.State != "" || reg.City != "" || reg.ZipCode != "" {
			return &Error{
				Code:    domain.CodeValidationErr,
				Message: "Volunteer user should not have service member fields",
			}
		}
	case domain.UserTypeServiceMember:
		if reg.Branch == "" {
			return &Error{
				Code:    domain.CodeMissingFields,
				Message: "Missing branch for service member",
			}
		}
		if !domain.Branch(reg.Branch).Valid() {
			return &Error{Code: domain.CodeInvalidType, Message: "Invalid branch type"}
		}
	}

	return nil
}

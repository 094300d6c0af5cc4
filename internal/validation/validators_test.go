package validation

import (
	"testing"

	"blue-star-api/internal/domain"
)

func validRegistration() domain.Registration {
	return domain.Registration{
		Email:       "jane.doe@example.com",
		Password:    "Abc12345!",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+15551234567",
		Gender:      "FEMALE",
		UserType:    "VOLUNTEER",
	}
}

func TestIsPasswordValid(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Abc12345!", true},
		{"Abc1234!", true},
		{"abc12345!", false}, // sin mayuscula
		{"ABC12345!", false}, // sin minuscula
		{"Abcdefgh!", false}, // sin digito
		{"Abc123456", false}, // sin simbolo
		{"Ab1!", false},      // corta
		{"Abc12345_", false}, // simbolo fuera del set
	}
	for _, c := range cases {
		if got := IsPasswordValid(c.password); got != c.want {
			t.Errorf("IsPasswordValid(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}

func TestIsNameValid(t *testing.T) {
	for _, name := range []string{"Jane", "O'Brien", "Smith-Jones", "Mary Anne"} {
		if !IsNameValid(name) {
			t.Errorf("IsNameValid(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "Jane42", "J@ne", "José"} {
		if IsNameValid(name) {
			t.Errorf("IsNameValid(%q) = true, want false", name)
		}
	}
}

func TestIsStringValid(t *testing.T) {
	if !IsStringValid("Canned Goods") {
		t.Fatal("expected alphabetic string to be valid")
	}
	for _, s := range []string{"", "Goods2", "Goods!"} {
		if IsStringValid(s) {
			t.Errorf("IsStringValid(%q) = true, want false", s)
		}
	}
}

func TestIsPhoneNumberValid(t *testing.T) {
	for _, n := range []string{"+15551234567", "5551234567"} {
		if !IsPhoneNumberValid(n) {
			t.Errorf("IsPhoneNumberValid(%q) = false, want true", n)
		}
	}
	for _, n := range []string{"", "12", "not-a-number"} {
		if IsPhoneNumberValid(n) {
			t.Errorf("IsPhoneNumberValid(%q) = true, want false", n)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, ok := ParseID(" 42 "); !ok || id != 42 {
		t.Fatalf("ParseID(\" 42 \") = (%d, %v), want (42, true)", id, ok)
	}
	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		if _, ok := ParseID(raw); ok {
			t.Errorf("ParseID(%q) succeeded, want failure", raw)
		}
	}
}

func TestValidateRegistrationAccepts(t *testing.T) {
	if err := ValidateRegistration(validRegistration()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	member := validRegistration()
	member.UserType = "SERVICE_MEMBER"
	member.Branch = "NAVY"
	member.City = "San Diego"
	if err := ValidateRegistration(member); err != nil {
		t.Fatalf("unexpected error for service member: %v", err)
	}
}

func TestValidateRegistrationMissingFieldNamesFirst(t *testing.T) {
	reg := validRegistration()
	reg.Password = ""
	reg.LastName = ""

	err := ValidateRegistration(reg)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Code != domain.CodeMissingFields {
		t.Fatalf("code = %s, want %s", err.Code, domain.CodeMissingFields)
	}
	if err.Message != "Missing required field: password" {
		t.Fatalf("message = %q, want first missing field in order", err.Message)
	}
}

func TestValidateRegistrationRejectsBadEnums(t *testing.T) {
	reg := validRegistration()
	reg.UserType = "ADMIN"
	if err := ValidateRegistration(reg); err == nil || err.Code != domain.CodeInvalidType {
		t.Fatalf("got %v, want INVALID_TYPE", err)
	}

	reg = validRegistration()
	reg.Gender = "OTHER"
	if err := ValidateRegistration(reg); err == nil || err.Code != domain.CodeInvalidType {
		t.Fatalf("got %v, want INVALID_TYPE", err)
	}
}

func TestValidateRegistrationVolunteerWithMemberFields(t *testing.T) {
	reg := validRegistration()
	reg.City = "Austin"

	err := ValidateRegistration(reg)
	if err == nil || err.Code != domain.CodeValidationErr {
		t.Fatalf("got %v, want VALIDATION_ERR", err)
	}
}

func TestValidateRegistrationServiceMemberBranch(t *testing.T) {
	reg := validRegistration()
	reg.UserType = "SERVICE_MEMBER"

	err := ValidateRegistration(reg)
	if err == nil || err.Code != domain.CodeMissingFields {
		t.Fatalf("got %v, want MISSING_FIELDS for absent branch", err)
	}

	reg.Branch = "PIRATES"
	err = ValidateRegistration(reg)
	if err == nil || err.Code != domain.CodeInvalidType {
		t.Fatalf("got %v, want INVALID_TYPE for unknown branch", err)
	}
}

func TestValidateRegistrationBadFormats(t *testing.T) {
	reg := validRegistration()
	reg.Email = "not-an-email"
	if err := ValidateRegistration(reg); err == nil || err.Message != "Invalid email format" {
		t.Fatalf("got %v, want invalid email format", err)
	}

	reg = validRegistration()
	reg.Password = "weakpass"
	if err := ValidateRegistration(reg); err == nil || err.Message != "Invalid password format" {
		t.Fatalf("got %v, want invalid password format", err)
	}

	reg = validRegistration()
	reg.FirstName = "Jane42"
	if err := ValidateRegistration(reg); err == nil || err.Code != domain.CodeValidationErr {
		t.Fatalf("got %v, want VALIDATION_ERR for bad name", err)
	}
}

func TestSanitizeRegistration(t *testing.T) {
	reg := domain.Registration{
		Email:     "  Jane.Doe@Example.COM ",
		FirstName: " Jane<script> ",
	}
	got := SanitizeRegistration(reg)
	if got.Email != "jane.doe@example.com" {
		t.Fatalf("email = %q", got.Email)
	}
	if got.FirstName != "Jane&lt;script&gt;" {
		t.Fatalf("firstName = %q", got.FirstName)
	}
	if reg.FirstName != " Jane<script> " {
		t.Fatal("input was mutated")
	}
}

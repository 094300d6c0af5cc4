package validation

import (
	"html"
	"strings"

	"blue-star-api/internal/domain"
)

// SanitizeField recorta espacios y escapa HTML en un valor no confiable.
func SanitizeField(value string) string {
	return html.EscapeString(strings.TrimSpace(value))
}

// SanitizeRegistration devuelve una copia saneada del payload sin mutar
// el original. El email se normaliza a minusculas. Debe correr antes de
// ValidateRegistration.
func SanitizeRegistration(reg domain.Registration) domain.Registration {
	return domain.Registration{
		Email:          strings.ToLower(SanitizeField(reg.Email)),
		Password:       SanitizeField(reg.Password),
		FirstName:      SanitizeField(reg.FirstName),
		LastName:       SanitizeField(reg.LastName),
		PhoneNumber:    SanitizeField(reg.PhoneNumber),
		Gender:         SanitizeField(reg.Gender),
		UserType:       SanitizeField(reg.UserType),
		Branch:         SanitizeField(reg.Branch),
		AddressLineOne: SanitizeField(reg.AddressLineOne),
		AddressLineTwo: SanitizeField(reg.AddressLineTwo),
		Country:        SanitizeField(reg.Country),
		State:          SanitizeField(reg.State),
		City:           SanitizeField(reg.City),
		ZipCode:        SanitizeField(reg.ZipCode),
	}
}

package domain

import "time"

// Gender identifica el genero declarado por el usuario.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Valid indica si el valor pertenece al enum.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// UserType distingue voluntarios de miembros de servicio.
type UserType string

const (
	UserTypeVolunteer     UserType = "VOLUNTEER"
	UserTypeServiceMember UserType = "SERVICE_MEMBER"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeVolunteer, UserTypeServiceMember:
		return true
	}
	return false
}

// User es el registro de identidad persistido. PasswordHash nunca
// contiene la clave en claro.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Gender       Gender    `json:"gender"`
	UserType     UserType  `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Registration es el payload crudo de registro, antes de sanitizar.
// Los campos enum se mantienen como string hasta validar membresia.
type Registration struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNumber    string `json:"phoneNumber"`
	Gender         string `json:"gender"`
	UserType       string `json:"userType"`
	Branch         string `json:"branch"`
	AddressLineOne string `json:"addressLineOne"`
	AddressLineTwo string `json:"addressLineTwo"`
	Country        string `json:"country"`
	State          string `json:"state"`
	City           string `json:"city"`
	ZipCode        string `json:"zipCode"`
}

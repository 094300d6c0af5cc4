package domain

// Branch es la rama militar de un miembro de servicio.
type Branch string

const (
	BranchArmy          Branch = "ARMY"
	BranchNavy          Branch = "NAVY"
	BranchAirForce      Branch = "AIR_FORCE"
	BranchSpaceForce    Branch = "SPACE_FORCE"
	BranchCoastGuard    Branch = "COAST_GUARD"
	BranchNationalGuard Branch = "NATIONAL_GUARD"
	BranchMarines       Branch = "MARINES"
)

func (b Branch) Valid() bool {
	switch b {
	case BranchArmy, BranchNavy, BranchAirForce, BranchSpaceForce,
		BranchCoastGuard, BranchNationalGuard, BranchMarines:
		return true
	}
	return false
}

// ServiceMember extiende a un User con userType SERVICE_MEMBER.
// Es uno-a-uno con su usuario y no puede sobrevivirlo.
type ServiceMember struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	Branch         Branch `json:"branch"`
	AddressLineOne string `json:"addressLineOne,omitempty"`
	AddressLineTwo string `json:"addressLineTwo,omitempty"`
	Country        string `json:"country,omitempty"`
	State          string `json:"state,omitempty"`
	City           string `json:"city,omitempty"`
	ZipCode        string `json:"zipCode,omitempty"`
}

package auth

// PrincipalType is the closed set of authenticatable actors. Each type has
// its own signing secret.
type PrincipalType int

const (
	PrincipalBarbershop PrincipalType = iota + 1
	PrincipalBarber
)

func (p PrincipalType) String() string {
	switch p {
	case PrincipalBarbershop:
		return "barbershop"
	case PrincipalBarber:
		return "barber"
	default:
		return "unknown"
	}
}

func (p PrincipalType) Valid() bool {
	return p == PrincipalBarbershop || p == PrincipalBarber
}

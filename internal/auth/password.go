package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when a login does not exist so both
// branches pay for one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("barber-manager-dummy"), bcrypt.DefaultCost)

func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// BurnComparison runs one bcrypt comparison against a fixed hash. Login calls
// it when the login is unknown.
func BurnComparison(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}

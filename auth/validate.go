package auth

import (
	"regexp"

	"github.com/yeremiapane/restofood-client/gateway"
)

// ValidationError dipakai lintas layar; alias supaya pemanggil auth tidak
// perlu import gateway hanya untuk cek tipe.
type ValidationError = gateway.ValidationError

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func validateCredentials(email, password string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Message: "Invalid email format"}
	}
	if len(password) < 6 {
		return &ValidationError{Message: "Password must be at least 6 characters"}
	}
	return nil
}

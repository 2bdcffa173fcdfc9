// Package password holds the complexity rules new passwords must pass and
// the bcrypt hasher used to store them.
package password

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinLength = 8
	// MaxBytes is the longest input bcrypt accepts.
	MaxBytes = 72
)

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {},
	"123456789": {}, "1234567890": {}, "qwerty123": {}, "qwertyuiop": {},
	"iloveyou": {}, "sunshine": {}, "princess": {}, "football": {},
	"baseball": {}, "welcome1": {}, "admin123": {}, "letmein1": {},
	"trustno1": {}, "superman": {}, "starwars": {}, "whatever": {},
	"abc12345": {}, "passw0rd": {}, "11111111": {}, "00000000": {},
	"1q2w3e4r": {}, "qwertyui": {}, "asdfghjk": {}, "zaq12wsx": {},
}

// Validator checks a candidate password for the given username and
// returns one message per failed rule.
type Validator interface {
	Validate(password, username string) []string
}

type Hasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

type complexityValidator struct{}

func NewValidator() Validator {
	return complexityValidator{}
}

func (complexityValidator) Validate(password, username string) []string {
	var msgs []string

	if similarToUsername(password, username) {
		msgs = append(msgs, "The password is too similar to the username.")
	}
	if len([]rune(password)) < MinLength {
		msgs = append(msgs, "This password is too short. It must contain at least 8 characters.")
	}
	if len(password) > MaxBytes {
		msgs = append(msgs, "This password is too long. It must contain at most 72 bytes.")
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		msgs = append(msgs, "This password is too common.")
	}
	if password != "" && strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		msgs = append(msgs, "This password is entirely numeric.")
	}

	return msgs
}

func similarToUsername(password, username string) bool {
	if len(username) < 3 || password == "" {
		return false
	}
	p := strings.ToLower(password)
	u := strings.ToLower(username)
	return strings.Contains(p, u) || strings.Contains(u, p)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher falls back to bcrypt.DefaultCost for out of range costs.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcryptHasher{cost: cost}
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h bcryptHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

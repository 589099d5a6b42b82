// Package secret hashes and generates the short one-time codes used to confirm orders.
package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	// CodeLength is the number of digits in a verification code
	CodeLength = 4
)

var (
	ErrInvalidCode   = errors.New("invalid code")
	ErrEmptyCode     = errors.New("code cannot be empty")
	ErrHashingCode   = errors.New("error hashing code")
	ErrVerifyingCode = errors.New("error verifying code")
)

// Hash generates a bcrypt hash of the code
func Hash(code string) (string, error) {
	if code == "" {
		return "", ErrEmptyCode
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(code), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingCode, err)
	}

	return string(bytes), nil
}

// Verify checks if the provided code matches the hash
func Verify(code, hash string) error {
	if code == "" || hash == "" {
		return ErrInvalidCode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCode
		}

		return fmt.Errorf("%w: %w", ErrVerifyingCode, err)
	}

	return nil
}

// Matches is Verify reduced to a boolean.
func Matches(code, hash string) bool {
	return Verify(code, hash) == nil
}

// GenerateCode returns a random zero-padded numeric code of CodeLength digits.
func GenerateCode() (string, error) {
	var builder strings.Builder

	for range CodeLength {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}

		builder.WriteString(digit.String())
	}

	return builder.String(), nil
}

// GenerateHashedCode returns a fresh code together with its hash.
func GenerateHashedCode() (string, string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", "", err
	}

	hash, err := Hash(code)
	if err != nil {
		return "", "", err
	}

	return code, hash, nil
}

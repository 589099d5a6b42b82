package secret_test

import (
	"errors"
	"strings"
	"testing"

	"forest/shared/secret"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if secret.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, secret.DefaultCost)
	}
	if secret.CodeLength != 4 {
		t.Errorf("expected CodeLength to be 4, got %d", secret.CodeLength)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		expectError   bool
		expectedError error
	}{
		{
			name: "valid code",
			code: "0421",
		},
		{
			name:          "empty code",
			code:          "",
			expectError:   true,
			expectedError: secret.ErrEmptyCode,
		},
		{
			name:          "too long for bcrypt",
			code:          strings.Repeat("1", 100),
			expectError:   true,
			expectedError: secret.ErrHashingCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := secret.Hash(tt.code)

			if tt.expectError {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				if hash != "" {
					t.Errorf("expected empty hash when error occurs, got %s", hash)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
				t.Errorf("expected bcrypt hash format, got %s", hash)
			}
			if err := secret.Verify(tt.code, hash); err != nil {
				t.Errorf("expected verification to succeed, got error: %v", err)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	validHash, err := secret.Hash("1234")
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name          string
		code          string
		hash          string
		expectedError error
	}{
		{name: "matching code", code: "1234", hash: validHash},
		{name: "wrong code", code: "4321", hash: validHash, expectedError: secret.ErrInvalidCode},
		{name: "empty code", code: "", hash: validHash, expectedError: secret.ErrInvalidCode},
		{name: "empty hash", code: "1234", hash: "", expectedError: secret.ErrInvalidCode},
		{name: "invalid hash format", code: "1234", hash: "invalid_hash", expectedError: secret.ErrVerifyingCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := secret.Verify(tt.code, tt.hash)

			if tt.expectedError == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				if !secret.Matches(tt.code, tt.hash) {
					t.Error("expected Matches to be true")
				}

				return
			}

			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
			if secret.Matches(tt.code, tt.hash) {
				t.Error("expected Matches to be false")
			}
		})
	}
}

func TestGenerateCode(t *testing.T) {
	for range 50 {
		code, err := secret.GenerateCode()
		if err != nil {
			t.Fatalf("failed to generate code: %v", err)
		}
		if len(code) != secret.CodeLength {
			t.Fatalf("expected %d digits, got %q", secret.CodeLength, code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("expected digits only, got %q", code)
			}
		}
	}
}

func TestGenerateHashedCode(t *testing.T) {
	code, hash, err := secret.GenerateHashedCode()
	if err != nil {
		t.Fatalf("failed to generate hashed code: %v", err)
	}
	if err := secret.Verify(code, hash); err != nil {
		t.Errorf("expected generated hash to verify, got %v", err)
	}
}

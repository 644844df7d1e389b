package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/akosarev/notekeeper/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	user := UserClaim{ID: "user-123", Fullname: "John Doe", Email: "john@example.com"}

	tok, err := GenerateToken(user, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := GetUserFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetUserFromToken error: %v", err)
	}
	if *got != user {
		t.Fatalf("user mismatch: got %+v want %+v", got, user)
	}
}

func TestGetUserFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(UserClaim{ID: "u1"}, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserFromToken(tok, secret)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, common.ErrorInvalidToken) {
		t.Fatalf("expected common.ErrorInvalidToken, got %v", err)
	}
}

func TestGetUserFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(UserClaim{ID: "u2"}, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUserFromToken(tok, []byte("wrong-secret"))
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestGetUserFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetUserFromToken("not.a.jwt", []byte("k"))
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

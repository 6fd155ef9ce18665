package auth_test

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "token-test-secret-32-characters!"

func newService() *auth.TokenService {
	return auth.NewTokenService(auth.TokenConfig{Secret: []byte(testSecret), TTL: time.Hour})
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := newService()

	tok, err := svc.Issue(42, svc.TTL())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Fatalf("token %q is not a three-part jwt", tok)
	}

	id, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != 42 {
		t.Errorf("subject = %d, want 42", id)
	}
}

func TestIssue_CarriesIDAndTimestamps(t *testing.T) {
	svc := newService()
	tok, err := svc.Issue(7, 30*time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims["id"] != float64(7) {
		t.Errorf("id claim = %v, want 7", claims["id"])
	}
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	if exp-iat != (30 * time.Minute).Seconds() {
		t.Errorf("exp - iat = %v, want 1800", exp-iat)
	}
}

func TestVerify_Failures(t *testing.T) {
	svc := newService()
	good, err := svc.Issue(1, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	expired, err := svc.Issue(1, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other := auth.NewTokenService(auth.TokenConfig{Secret: []byte("some-other-secret"), TTL: time.Hour})
	foreign, err := other.Issue(1, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// swap the claims segment, keep the original signature
	parts := strings.Split(good, ".")
	parts[1] = base64.RawURLEncoding.EncodeToString(
		[]byte(fmt.Sprintf(`{"id":2,"exp":%d}`, time.Now().Add(time.Hour).Unix())))
	tampered := strings.Join(parts, ".")

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": 1,
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	cases := map[string]string{
		"tampered":  tampered,
		"expired":   expired,
		"malformed": "not.a.jwt",
		"empty":     "",
		"wrong key": foreign,
		"no id":     noID,
		"no exp":    noExp,
		"alg none":  noneAlg,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			id, err := svc.Verify(tok)
			if !errors.Is(err, domain.ErrTokenInvalid) {
				t.Fatalf("err = %v, want ErrTokenInvalid", err)
			}
			if id != 0 {
				t.Errorf("id = %d, want 0 on failure", id)
			}
		})
	}
}

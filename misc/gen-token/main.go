package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Mints a bearer token for poking the API from curl without going through
// the login flow. The secret and audience must match the running server's
// JWT_SECRET and JWT_AUDIENCE.
func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: go run main.go <user-id> <jwt-secret> [audience]")
	}

	userID := os.Args[1]
	secret := os.Args[2]
	audience := "authenticated"
	if len(os.Args) > 3 {
		audience = os.Args[3]
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(signed)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Generates a bearer token for local testing. A token with -tenant is
// scoped to that tenant; an admin token without -tenant runs unrestricted.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	userID := flag.String("user", "", "User ID for the token")
	roles := flag.String("roles", "user", "Comma-separated list of roles")
	tenantID := flag.String("tenant", "", "Tenant ID for the token (omit for admin tokens)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}

	roleList := strings.Split(*roles, ",")
	if *tenantID == "" && !contains(roleList, "admin") {
		log.Fatal("Tenant ID is required for non-admin tokens")
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	claims := jwt.MapClaims{
		"user_id": *userID,
		"roles":   roleList,
		"exp":     time.Now().Add(time.Duration(*expirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	if *tenantID != "" {
		claims["tenant_id"] = *tenantID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(signed)
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == target {
			return true
		}
	}
	return false
}

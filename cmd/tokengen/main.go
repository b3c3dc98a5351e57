// Package main provides a CLI tool for minting admin tokens for the roster
// API. These tokens use the dev signing key by default and will NOT work
// against a production deployment unless -signing-key matches.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"roster/internal/jwttoken"
)

const (
	// Dev signing key - matches config.go when ROSTER_ADMIN_SIGNING_KEY is not set
	devSigningKey = "dev-signing-key-change-in-production"

	defaultSubject = "local-admin"
	defaultTTL     = 15 * time.Minute
)

type tokenOutput struct {
	Token     string            `json:"token"`
	Subject   string            `json:"subject"`
	ExpiresIn string            `json:"expires_in"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	subject := flag.String("subject", defaultSubject, "Admin subject recorded in audit logs")
	signingKey := flag.String("signing-key", devSigningKey, "HS256 signing key the server is configured with")
	ttl := flag.Duration("ttl", defaultTTL, "Token time-to-live")
	asJSON := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	svc := jwttoken.NewService(*signingKey, "roster", "roster-admin", *ttl)
	token, err := svc.GenerateAdminToken(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		out := tokenOutput{
			Token:     token,
			Subject:   *subject,
			ExpiresIn: ttl.String(),
			Usage: map[string]string{
				"header":  "Authorization: Bearer " + token,
				"example": "curl -X POST -H 'Authorization: Bearer <token>' http://localhost:8080/admin/directory/reload",
			},
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(token)
}

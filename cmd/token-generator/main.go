// Command token-generator mints a bearer token for the studio API using the
// configured auth.jwt_secret.
//
// Usage:
//
//	STUDIO_AUTH_JWT_SECRET=... token-generator -subject studio-ui
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/config"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/service/auth"
)

func main() {
	subject := flag.String("subject", "dev", "client name recorded in the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "auth.jwt_secret is not set; the API runs without authentication")
		os.Exit(1)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create JWT service: %v\n", err)
		os.Exit(1)
	}

	token, err := jwtService.GenerateToken(context.Background(), *subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

// Command token mints an access token for the catalog write routes.
//
//	go run ./cmd/token -subject editor
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"bookstore-catalog/internal/config"
	"bookstore-catalog/pkg/jwt"
	"bookstore-catalog/pkg/logger"
)

func main() {
	subject := flag.String("subject", "catalog-editor", "token subject")
	role := flag.String("role", "admin", "role claim")
	flag.Parse()

	_ = godotenv.Load()

	log := logger.New("development", "info")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	token, err := jwt.NewManager(cfg.Auth.Secret, cfg.Auth.AccessTTL).GenerateAccessToken(*subject, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate token")
	}

	fmt.Fprintln(os.Stdout, token)
}

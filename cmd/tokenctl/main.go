// Command tokenctl prepares credentials accepted by the clientes server.
//
//	tokenctl issue -secret <TOKEN_SECRET> [-issuer clientes] [-subject backoffice] [-ttl 24h]
//	tokenctl hash <api-key>
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/GlebRadaev/clientes/pkg/auth"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "issue":
		fs := flag.NewFlagSet("issue", flag.ExitOnError)
		secret := fs.String("secret", os.Getenv("TOKEN_SECRET"), "secret shared with the server")
		issuer := fs.String("issuer", "clientes", "token issuer, must match TOKEN_ISSUER")
		subject := fs.String("subject", "backoffice", "token subject")
		ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
		_ = fs.Parse(os.Args[2:])

		if *secret == "" {
			logger.Fatal().Msg("secret is required")
		}
		token, err := auth.NewJWTService(*secret, *issuer).GenerateJWT(*subject, time.Now().Add(*ttl))
		if err != nil {
			logger.Fatal().Err(err).Msg("can't issue token")
		}
		fmt.Println(token)
	case "hash":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		hash, err := (&auth.KeyService{}).HashKey(os.Args[2])
		if err != nil {
			logger.Fatal().Err(err).Msg("can't hash key")
		}
		fmt.Println(hash)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tokenctl issue -secret <secret> [-issuer name] [-subject name] [-ttl 24h]")
	fmt.Fprintln(os.Stderr, "       tokenctl hash <api-key>")
}

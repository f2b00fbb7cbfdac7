// Command token issues a bearer token for the dashboard API.
//
//	token -subject dashboard
//	token -subject alice -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/straye-as/sales-dashboard/internal/auth"
	"github.com/straye-as/sales-dashboard/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "dashboard", "token subject (user id or service name)")
	ttl := fs.Duration("ttl", 0, "token lifetime; defaults to AUTH_TOKENTTL hours")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *ttl > 0 {
		cfg.Auth.TokenTTL = int(ttl.Round(time.Hour) / time.Hour)
		if cfg.Auth.TokenTTL == 0 {
			cfg.Auth.TokenTTL = 1
		}
	}

	token, expiresAt, err := auth.NewTokenManager(&cfg.Auth).Issue(*subject)
	if err != nil {
		return err
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "subject=%s expires=%s\n", *subject, expiresAt.Format(time.RFC3339))
	return nil
}

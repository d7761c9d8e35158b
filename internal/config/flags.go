package config

import (
	"flag"
	"os"
	"time"

	"payledger/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-r string   path of the employee pay record file
//	-u string   path of the user account file
//	-k string   session token signing key
//	-t int      session token lifetime in minutes
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, so it does not interfere with the -c/-config stage.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-r", "-u", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.RecordsFile, "r", cfg.RecordsFile, "path of the employee pay record file")
	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "path of the user account file")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "session token signing key")
	sessionTTL := fs.Int("t", int(cfg.SessionTokenValidityDuration.Minutes()), "session token lifetime (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTokenValidityDuration = time.Duration(*sessionTTL) * time.Minute
}

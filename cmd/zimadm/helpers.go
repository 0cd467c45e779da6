package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/zimadm/zimadm/internal/config"
	"github.com/zimadm/zimadm/pkg/admin"
)

// connect loads configuration, applies flag overrides, builds the client
// and logs in.
func connect(ctx context.Context) (*admin.Client, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}

	// Flags beat config and environment.
	if flags.host != "" {
		cfg.Host = flags.host
	}
	if flags.port != 0 {
		cfg.Port = flags.port
	}
	if flags.user != "" {
		cfg.User = flags.user
	}
	if flags.password != "" {
		cfg.Password = flags.password
	}
	if flags.insecure {
		cfg.TLSVerify = false
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", flags.timeout, err)
		}
		cfg.Timeout = d
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required (-H or config)")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("user is required (-u or config)")
	}
	if cfg.Password == "" {
		cfg.Password, err = promptPassword(cfg.User)
		if err != nil {
			return nil, err
		}
	}

	c := admin.NewClient(cfg.Host,
		admin.WithPort(cfg.Port),
		admin.WithTLSVerify(cfg.TLSVerify),
		admin.WithTimeout(cfg.Timeout),
		admin.WithLogger(newLogger()),
	)
	if err := c.Login(ctx, cfg.User, cfg.Password); err != nil {
		return nil, err
	}
	return c, nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(user string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", user)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flags.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}

// selector interprets an entity argument per the -i flag.
func selector(value string) admin.Selector {
	if flags.byID {
		return admin.SelectID(value)
	}
	return admin.SelectName(value)
}

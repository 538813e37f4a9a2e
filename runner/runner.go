package runner

import (
	"context"
	"errors"
	"flag"
	"os"

	"go.uber.org/zap"
)

const (
	RunModeMCP = iota + 1
	RunModeWeb
)

var ErrInvalidRunMode = errors.New("invalid run mode")

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

type Config struct {
	DBPath    string
	Addr      string
	Debug     bool
	WebRunner bool
	RunMode   int
}

func ParseConfig() *Config {
	cfg := Config{}

	flag.StringVar(&cfg.DBPath, "db", "users.db", "path to the sqlite database file")
	flag.StringVar(&cfg.Addr, "addr", ":8080", "address to listen on for web server")
	flag.BoolVar(&cfg.WebRunner, "web", false, "run HTTP server instead of the MCP stdio server")
	flag.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	flag.Parse()

	if v := os.Getenv("USERS_DB_PATH"); v != "" && cfg.DBPath == "users.db" {
		cfg.DBPath = v
	}

	if cfg.WebRunner {
		cfg.RunMode = RunModeWeb
	} else {
		cfg.RunMode = RunModeMCP
	}

	return &cfg
}

// NewLogger builds the process logger. Both configurations write to
// stderr, keeping stdout free for the MCP transport.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

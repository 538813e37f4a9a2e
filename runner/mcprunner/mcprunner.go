// Package mcprunner runs the MCP stdio server.
package mcprunner

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/uservault/uservault/runner"
	"github.com/uservault/uservault/tools"
	"github.com/uservault/uservault/users"
	"github.com/uservault/uservault/users/sqlite"
)

const (
	serverName    = "users-tool-server"
	serverVersion = "1.0.0"
)

type mcprunner struct {
	cfg    *runner.Config
	repo   *sqlite.Repo
	srv    *server.MCPServer
	logger *zap.Logger
}

func New(cfg *runner.Config) (runner.Runner, error) {
	logger, err := runner.NewLogger(cfg.Debug)
	if err != nil {
		return nil, err
	}

	repo, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	svc := users.NewService(repo, logger)

	srv := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
	)

	tools.Register(srv, svc, logger)

	ans := mcprunner{
		cfg:    cfg,
		repo:   repo,
		srv:    srv,
		logger: logger,
	}

	return &ans, nil
}

func (m *mcprunner) Run(ctx context.Context) error {
	m.logger.Info("starting MCP server",
		zap.String("db", m.cfg.DBPath),
	)

	return server.NewStdioServer(m.srv).Listen(ctx, os.Stdin, os.Stdout)
}

func (m *mcprunner) Close(context.Context) error {
	return multierr.Append(m.repo.Close(), m.logger.Sync())
}

// Package webrunner runs the HTTP server variant of the user tools.
package webrunner

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/uservault/uservault/runner"
	"github.com/uservault/uservault/users"
	"github.com/uservault/uservault/users/sqlite"
	"github.com/uservault/uservault/web"
)

type webrunner struct {
	cfg    *runner.Config
	repo   *sqlite.Repo
	srv    *web.Server
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
	srv := web.New(svc, cfg.Addr, logger)

	ans := webrunner{
		cfg:    cfg,
		repo:   repo,
		srv:    srv,
		logger: logger,
	}

	return &ans, nil
}

func (w *webrunner) Run(ctx context.Context) error {
	w.logger.Info("starting web server",
		zap.String("addr", w.cfg.Addr),
		zap.String("db", w.cfg.DBPath),
	)

	return w.srv.Start(ctx)
}

func (w *webrunner) Close(context.Context) error {
	return multierr.Append(w.repo.Close(), w.logger.Sync())
}

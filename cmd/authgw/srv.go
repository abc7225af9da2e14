package main

import (
	"context"
	"fmt"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/internal/domain"
	"github.com/maggarwal/authgateway/pkg/api"
	"github.com/maggarwal/authgateway/pkg/authenticator"
	"github.com/maggarwal/authgateway/pkg/logger"
	"github.com/maggarwal/authgateway/pkg/prometheus"
	"github.com/maggarwal/authgateway/pkg/xcontext"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App

	configs  config.Configs
	logger   logger.Logger
	registry *prom.Registry

	// doer replaces the HTTP client built from configs when set.
	doer    api.Doer
	gateway domain.AuthHTTPGateway
}

func (s *srv) loadConfig(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return err
	}

	if level := ctx.String("log-level"); level != "" {
		cfg.Log.Level = level
	}

	s.configs = cfg
	return nil
}

func (s *srv) loadLogger() error {
	l, err := logger.New(s.configs.Log)
	if err != nil {
		return fmt.Errorf("cannot create logger: %w", err)
	}

	s.logger = l
	return nil
}

func (s *srv) loadGateway() {
	doer := s.doer
	if doer == nil {
		doer = api.NewHTTPClient(s.configs.HTTP)
	}

	s.gateway = domain.NewAuthHTTPGateway(s.configs, doer, authenticator.NewOAuth1Signer())
}

func (s *srv) loadRegistry() {
	s.registry = prometheus.NewRegistry()
}

func (s *srv) before(ctx *cli.Context) error {
	if err := s.loadConfig(ctx); err != nil {
		return err
	}

	if err := s.loadLogger(); err != nil {
		return err
	}

	s.loadGateway()
	s.loadRegistry()
	return nil
}

func (s *srv) after(ctx *cli.Context) error {
	if !ctx.Bool("metrics") || s.registry == nil {
		return nil
	}

	return prometheus.WriteText(ctx.App.ErrWriter, s.registry)
}

func (s *srv) context(ctx *cli.Context) context.Context {
	return xcontext.WithLogger(ctx.Context, s.logger)
}

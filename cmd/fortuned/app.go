// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-fortune/internal/cmdutil"
	"github.com/ianlewis/go-fortune/internal/config"
	"github.com/ianlewis/go-fortune/internal/server"
)

const shutdownTimeout = 10 * time.Second

// ErrFortuned is a parent error for all command errors.
var ErrFortuned = errors.New("fortuned")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrFortuned)

// ErrConfig is a configuration error.
var ErrConfig = fmt.Errorf("%w: loading config", ErrFortuned)

func newFortunedApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Serve random fortunes over HTTP.",
		Description: strings.Join([]string{
			"Serves a random fortune at / and fortune file statistics at /info.",
			"Configuration is read from " + config.DefaultConfigName + ".toml in the working directory",
			"unless --config is given. Values can be overridden by " + config.EnvPrefix + "_* environment variables.",
		}, "\n"),
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Usage:     "path to the config file",
				Aliases:   []string{"c"},
				TakesFile: true,
			},
		}, cmdutil.SpecialFlags()...),
		Copyright:       strings.Join(cmdutil.CopyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				cmdutil.Check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return cmdutil.PrintVersion(c)
			}

			if c.NArg() > 0 {
				return fmt.Errorf("%w: unexpected arguments", ErrFlagParse)
			}

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfig, err)
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfig, err)
			}

			return serve(c.Context, cfg, logger)
		},
	}
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level), nil
}

func newHandler(cfg *config.Config, logger zerolog.Logger) http.Handler {
	return server.New(cfg.DataPath, logger, nil).Router()
}

// serve runs the server until ctx is canceled.
func serve(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           newHandler(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info().
			Str("address", cfg.Address).
			Str("data_path", cfg.DataPath).
			Msg("starting server")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("%w: %w", ErrFortuned, err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%w: shutting down: %w", ErrFortuned, err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w: %w", ErrFortuned, err)
	}
	return nil
}

// Copyright 2026 Ian Lewis
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
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-cjkdict"
	"github.com/ianlewis/go-cjkdict/internal/config"
	"github.com/ianlewis/go-cjkdict/internal/logger"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrCjkutil is a parent error for all command errors.
var ErrCjkutil = errors.New("cjkutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrCjkutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use it.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

var langFlag = &cli.StringFlag{
	Name:    "lang",
	Usage:   "language of the input: zh, ja or ko",
	Aliases: []string{"l"},
	Value:   "ja",
}

func parseLang(c *cli.Context) (cjkdict.Language, error) {
	lang, err := cjkdict.ParseLanguage(c.String("lang"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return lang, nil
}

// loadConfig reads the configuration file and applies command line
// overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if dir := c.String("data-dir"); dir != "" {
		cfg.Data.Dir = dir
		cfg.Data.URL = ""
	}
	if c.Bool("offline") {
		cfg.Remote.Disabled = true
	}
	if c.Bool("debug") {
		cfg.Log.Debug = true
	}
	return cfg, nil
}

func newEngine(c *cli.Context) (*cjkdict.Engine, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	logger.SetDebug(cfg.Log.Debug)

	e, err := cjkdict.New(cfg.EngineOptions(&http.Client{}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCjkutil, err)
	}
	return e, nil
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	_, err := fmt.Fprintln(c.App.Writer, info.String())
	return err
}

func newCjkutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Segment and look up Chinese, Japanese and Korean text.",
		Description: strings.Join([]string{
			"CJK dictionary utility written in Go.",
			"http://github.com/ianlewis/go-cjkdict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{"CJKDICT_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "read lexicons from `DIR`",
				Aliases: []string{"d"},
				Value:   defaultDataDir(),
			},
			&cli.BoolFlag{
				Name:               "offline",
				Usage:              "do not query remote dictionaries",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "debug",
				Usage:              "enable debug logging",
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			logger.InitLoggerWithWriter(c.App.ErrWriter)
			return nil
		},
		After: func(*cli.Context) error {
			logger.Sync()
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			segmentCommand,
			lookupCommand,
			lexiconsCommand,
		},
	}
}

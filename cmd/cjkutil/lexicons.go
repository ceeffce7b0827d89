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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cjkdict"
)

var lexiconsCommand = &cli.Command{
	Name:  "lexicons",
	Usage: "show lexicon status",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "load",
			Usage:              "load every lexicon first",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		e, err := newEngine(c)
		if err != nil {
			return err
		}

		var errs []error
		if c.Bool("load") {
			for _, lang := range cjkdict.Languages {
				if err := e.EnsureLexiconLoaded(c.Context, lang); err != nil {
					errs = append(errs, err)
				}
			}
		}

		tbl := table.New("ID", "State", "Entries", "Error").WithWriter(c.App.Writer)
		for _, s := range e.LexiconStates() {
			msg := ""
			if s.Err != nil {
				msg = s.Err.Error()
			}
			tbl.AddRow(s.ID, s.State, s.Entries, msg)
		}
		tbl.Print()

		return errors.Join(errs...)
	},
}

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
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cjkdict/segment"
)

var segmentCommand = &cli.Command{
	Name:      "segment",
	Usage:     "split text into words",
	ArgsUsage: "TEXT...",
	Flags: []cli.Flag{
		langFlag,
		&cli.BoolFlag{
			Name:               "resolve",
			Usage:              "look up each word",
			Aliases:            []string{"r"},
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing text", ErrFlagParse)
		}
		lang, err := parseLang(c)
		if err != nil {
			return err
		}
		e, err := newEngine(c)
		if err != nil {
			return err
		}

		text := strings.Join(c.Args().Slice(), " ")
		words, err := e.Segment(c.Context, text, lang)
		if err != nil {
			return err
		}

		if !c.Bool("resolve") {
			tbl := table.New("Start", "End", "Text", "Particle").WithWriter(c.App.Writer)
			for _, w := range words {
				tbl.AddRow(w.Start, w.End, w.Text, w.Particle)
			}
			tbl.Print()
			return nil
		}

		tbl := table.New("Text", "Word", "Reading", "Definition").WithWriter(c.App.Writer)
		for _, w := range segment.Lexical(words) {
			r := e.Resolve(c.Context, w.Text, lang)
			def := r.Definition
			if !r.Found {
				def = "(" + r.Hint + ")"
			}
			tbl.AddRow(w.Text, r.Word, r.Reading, def)
		}
		tbl.Print()
		return nil
	},
}

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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cjkdict"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "look up words",
	ArgsUsage: "WORD...",
	Flags: []cli.Flag{
		langFlag,
		&cli.BoolFlag{
			Name:               "json",
			Usage:              "print results as JSON",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing word", ErrFlagParse)
		}
		lang, err := parseLang(c)
		if err != nil {
			return err
		}
		e, err := newEngine(c)
		if err != nil {
			return err
		}

		var results []cjkdict.Result
		for _, w := range c.Args().Slice() {
			results = append(results, e.Resolve(c.Context, w, lang))
		}

		if c.Bool("json") {
			enc := json.NewEncoder(c.App.Writer)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		for _, r := range results {
			printResult(c.App.Writer, r)
		}
		return nil
	},
}

func printResult(w io.Writer, r cjkdict.Result) {
	if !r.Found {
		fmt.Fprintf(w, "%s: not found (%s)\n\n", r.Word, r.Hint)
		return
	}

	fmt.Fprintf(w, "%s", r.Word)
	if r.Reading != "" {
		fmt.Fprintf(w, " [%s]", r.Reading)
	}
	fmt.Fprintf(w, " (%s)\n", r.Source)

	for i, d := range r.Definitions {
		if d.PartOfSpeech != "" {
			fmt.Fprintf(w, "  %d. (%s) %s\n", i+1, d.PartOfSpeech, d.Meaning)
			continue
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, d.Meaning)
	}

	var notes []string
	if r.Conjugation != nil {
		notes = append(notes, fmt.Sprintf("%s of %s", r.Conjugation.ConjugationType, r.Conjugation.DictionaryForm))
	}
	if r.Particle != nil {
		notes = append(notes, fmt.Sprintf("%s + %s (%s)", r.Particle.Stem, r.Particle.Particle, r.Particle.ParticleDefinition))
	}
	if r.Formality != "" {
		notes = append(notes, string(r.Formality))
	}
	if r.GrammarNotes != "" {
		notes = append(notes, r.GrammarNotes)
	}
	if len(notes) > 0 {
		fmt.Fprintf(w, "  Notes: %s\n", strings.Join(notes, "; "))
	}
	for _, ex := range r.Examples {
		fmt.Fprintf(w, "  e.g. %s\n", ex)
	}
	fmt.Fprintln(w)
}

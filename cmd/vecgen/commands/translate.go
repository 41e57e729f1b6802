// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"fmt"

	"github.com/ajroetker/go-lanes/cmd/vecgen/arch"
	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/ajroetker/go-lanes/cmd/vecgen/emit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) translateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <level> <op> <shape>",
		Short: "Print the method one level generates for one operation",
		Long: `Translate prints the generated method of one (shape, op) pair on one
level, exactly as generate would emit it. A pair the level has no native
instruction for shows its decomposition into halves.`,
		Example: `  vecgen translate neon madd f32x4
  vecgen translate avx2 zip i32x8`,
		Args: cobra.ExactArgs(3),
		RunE: a.runTranslate,
	}
}

func (a *app) runTranslate(cmd *cobra.Command, args []string) error {
	t, err := arch.ByName(args[0])
	if err != nil {
		return err
	}
	s, err := parseShape(args[2])
	if err != nil {
		return err
	}
	op, ok := catalog.Lookup(s, args[1], true)
	if !ok {
		return fmt.Errorf("%s on %s: %w", args[1], s, arch.ErrUnknownOp)
	}
	g := emit.New(emit.Config{Conversions: true}, a.log)
	m, err := g.Build(t, catalog.Pair{Shape: s, Op: op})
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"target":     t.Name(),
		"method":     m.Pair.Method(),
		"decomposed": m.Decomposed,
	}).Debug("translated")
	fmt.Fprintln(cmd.OutOrStdout(), emit.Source(t, m))
	return nil
}

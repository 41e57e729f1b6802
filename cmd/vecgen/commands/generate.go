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
	"strings"

	"github.com/ajroetker/go-lanes/cmd/vecgen/emit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the generated interface and level files",
		Long: `Generate renders z_shapes.gen.go, z_simd.gen.go, z_vectors.gen.go and
one z_<level>.gen.go per level into the output directory. Every method is
type-checked against the catalog before anything is written; a level that
cannot produce a method fails the whole run.`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}
	flags := cmd.Flags()
	flags.StringP("out", "o", ".", "output directory")
	flags.String("pkg", "hwy", "package name of the generated files")
	flags.StringSlice("levels", levelNames(), "levels to generate")
	flags.Bool("no-conversions", false, "omit widen, narrow, reinterpret_u8 and convert_u32")
	flags.String("binding-path", "", "import path of the binding packages (default <module>/"+BindingSubdir+")")
	flags.Bool("dry-run", false, "render and check every file without writing")

	a.bind("out", flags.Lookup("out"))
	a.bind("package", flags.Lookup("pkg"))
	a.bind("levels", flags.Lookup("levels"))
	a.bind("binding-path", flags.Lookup("binding-path"))
	a.v.SetDefault("conversions", true)
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	if noConv, _ := cmd.Flags().GetBool("no-conversions"); noConv {
		cfg.Conversions = false
	}
	ecfg, out, err := cfg.emitConfig()
	if err != nil {
		return err
	}
	log := a.log.WithFields(logrus.Fields{
		"out":     out,
		"package": ecfg.Package,
		"binding": ecfg.BindingPath,
	})
	g := emit.New(ecfg, log)

	if dry, _ := cmd.Flags().GetBool("dry-run"); dry {
		files, err := g.Files(cmd.Context())
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\n", f.Name, len(f.Source))
		}
		return nil
	}

	if err := g.Write(cmd.Context(), out); err != nil {
		return err
	}
	names := levelNamesOf(ecfg)
	log.WithField("levels", names).Info("generated")
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated code for levels: %s\n", strings.Join(names, ", "))
	return nil
}

func levelNamesOf(cfg emit.Config) []string {
	names := make([]string, len(cfg.Levels))
	for i, t := range cfg.Levels {
		names[i] = t.Name()
	}
	return names
}

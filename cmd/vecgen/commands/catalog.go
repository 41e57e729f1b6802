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
	"text/tabwriter"

	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *app) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog [shape...]",
		Short: "List the operations of every shape, or of the given shapes",
		Example: `  vecgen catalog
  vecgen catalog --conversions u8x16 f32x8`,
		RunE: a.runCatalog,
	}
	cmd.Flags().Bool("conversions", false, "include widen, narrow, reinterpret_u8 and convert_u32")
	return cmd
}

func (a *app) runCatalog(cmd *cobra.Command, args []string) error {
	conv, _ := cmd.Flags().GetBool("conversions")
	shapes, err := parseShapes(args)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tOP\tKIND\tMETHOD")
	total := 0
	for _, s := range shapes {
		for _, op := range catalog.OperationsFor(s, conv) {
			sig, err := op.Signature(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\n", s, op.Name, op.Kind, op.Method(s), formatSignature(sig))
			total++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	a.log.WithField("shapes", len(shapes)).WithField("ops", total).Debug("listed catalog")
	return nil
}

// parseShapes parses catalog shape names. No names means every shape.
func parseShapes(names []string) ([]catalog.Shape, error) {
	if len(names) == 0 {
		return catalog.Shapes(), nil
	}
	shapes := make([]catalog.Shape, 0, len(names))
	for _, name := range names {
		s, err := parseShape(name)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return lo.Uniq(shapes), nil
}

func parseShape(name string) (catalog.Shape, error) {
	s, err := catalog.ParseShape(strings.ToLower(name))
	if err != nil {
		return catalog.Shape{}, err
	}
	if !s.InCatalog() {
		return catalog.Shape{}, fmt.Errorf("shape %s is outside the catalog (%d to %d bits)", s, catalog.MinWidth, catalog.MaxWidth)
	}
	return s, nil
}

// formatSignature renders "(a, b F32x4) F32x4" style parameter and result
// lists.
func formatSignature(sig catalog.Signature) string {
	params := lo.Map(sig.Params, func(p catalog.Param, _ int) string { return p.Name + " " + p.Type })
	results := sig.ResultTypes()
	out := "(" + strings.Join(params, ", ") + ")"
	switch len(results) {
	case 0:
		return out
	case 1:
		return out + " " + results[0]
	default:
		return out + " (" + strings.Join(results, ", ") + ")"
	}
}

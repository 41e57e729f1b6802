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
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/klauspost/cpuid/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// hostFeatures are the CPU features the capability levels depend on.
var hostFeatures = []struct {
	name string
	id   cpuid.FeatureID
}{
	{"AVX", cpuid.AVX},
	{"AVX2", cpuid.AVX2},
	{"FMA3", cpuid.FMA3},
	{"BMI1", cpuid.BMI1},
	{"BMI2", cpuid.BMI2},
	{"ASIMD", cpuid.ASIMD},
	{"AVX512F", cpuid.AVX512F},
}

func (a *app) detectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show the capability level and CPU features of this host",
		Args:  cobra.NoArgs,
		RunE:  a.runDetect,
	}
	cmd.Flags().Bool("all", false, "list every feature the CPU reports")
	return cmd
}

func (a *app) runDetect(cmd *cobra.Command, _ []string) error {
	level := hwy.Detect()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Level:\t%s (%d-byte vectors)\n", level, level.Width())
	fmt.Fprintf(w, "Levels:\t%s\n", strings.Join(lo.Map(hwy.Levels(), func(l hwy.Level, _ int) string {
		return l.String()
	}), ", "))
	fmt.Fprintf(w, "HWY_NO_SIMD:\t%t\n", hwy.NoSimdEnv())
	fmt.Fprintf(w, "Platform:\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "CPU:\t%s\n", describeCPU())
	fmt.Fprintln(w, "Features:")
	for _, f := range hostFeatures {
		fmt.Fprintf(w, "  %s\t%s\n", f.name, yesNo(cpuid.CPU.Supports(f.id)))
	}
	if all, _ := cmd.Flags().GetBool("all"); all {
		fmt.Fprintf(w, "All:\t%s\n", strings.Join(cpuid.CPU.FeatureSet(), " "))
	}
	a.log.WithField("simd_level", level.String()).Debug("detected")
	return w.Flush()
}

func describeCPU() string {
	c := cpuid.CPU
	name := c.BrandName
	if name == "" {
		name = "unknown"
	}
	if c.VendorString != "" {
		name += " (" + c.VendorString + ")"
	}
	if c.PhysicalCores > 0 {
		name += fmt.Sprintf(", %d cores / %d threads", c.PhysicalCores, c.LogicalCores)
	}
	return name
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

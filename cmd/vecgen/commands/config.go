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
	"path/filepath"

	"github.com/ajroetker/go-lanes/cmd/vecgen/arch"
	"github.com/ajroetker/go-lanes/cmd/vecgen/emit"
	"github.com/samber/lo"
)

// Config is the resolved configuration of vecgen generate. Keys match the
// long flag names, so .vecgen.yaml reads like the command line.
type Config struct {
	Out         string   `mapstructure:"out"`
	Package     string   `mapstructure:"package"`
	Levels      []string `mapstructure:"levels"`
	Conversions bool     `mapstructure:"conversions"`
	BindingPath string   `mapstructure:"binding-path"`
	LogLevel    string   `mapstructure:"log-level"`
}

// BindingSubdir is where the binding packages live below the module root.
const BindingSubdir = "hwy/intrin"

func (a *app) config() (Config, error) {
	var cfg Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// emitConfig validates cfg and resolves what it leaves to discovery: the
// output directory becomes absolute and an empty binding path is taken from
// the enclosing module.
func (cfg Config) emitConfig() (emit.Config, string, error) {
	levels, err := translators(cfg.Levels)
	if err != nil {
		return emit.Config{}, "", err
	}
	out, err := filepath.Abs(cfg.Out)
	if err != nil {
		return emit.Config{}, "", err
	}
	binding := cfg.BindingPath
	if binding == "" {
		mod, err := FindModule(out)
		if err != nil {
			return emit.Config{}, "", fmt.Errorf("binding path: %w (set --binding-path)", err)
		}
		binding = mod.Path + "/" + BindingSubdir
	}
	return emit.Config{
		Package:     cfg.Package,
		BindingPath: binding,
		Levels:      levels,
		Conversions: cfg.Conversions,
	}, out, nil
}

// translators resolves level names, dropping repeats. No names means
// every level.
func translators(names []string) ([]arch.Translator, error) {
	if len(names) == 0 {
		return arch.All(), nil
	}
	var out []arch.Translator
	for _, name := range names {
		t, err := arch.ByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return lo.UniqBy(out, arch.Translator.Name), nil
}

func levelNames() []string {
	return lo.Map(arch.All(), func(t arch.Translator, _ int) string { return t.Name() })
}

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

// Package commands holds the cobra commands of vecgen.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app is the state shared by the commands of one root command.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	cfgFile string
}

// Execute runs the vecgen root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns a fresh vecgen command tree with its own
// configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "vecgen",
		Short: "Generate portable SIMD operations for every capability level",
		Long: `vecgen turns the shape and operation catalog into Go source: one
interface listing every vector operation, and one implementation of it
per capability level. Levels without a native instruction for an
operation get it decomposed into narrower native halves.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.vecgen.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.BoolP("verbose", "v", false, "verbose output, same as --log-level=debug")
	a.bind("log-level", flags.Lookup("log-level"))
	a.bind("verbose", flags.Lookup("verbose"))

	root.AddCommand(
		a.generateCommand(),
		a.catalogCommand(),
		a.translateCommand(),
		a.detectCommand(),
	)
	return root
}

// bind ties a config key to a flag. The flag always exists, so an error is
// a programming mistake.
func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("vecgen: bind %s: %v", key, err))
	}
}

// init reads the config file and environment, then sets up logging.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".vecgen")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("VECGEN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return a.setupLogging(cmd.ErrOrStderr())
}

func (a *app) setupLogging(out io.Writer) error {
	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	if a.v.GetBool("verbose") {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)
	a.log.SetOutput(out)
	a.log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("using config file")
	}
	return nil
}

/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/pubdb/internal/iofs"
	"github.com/gnames/pubdb/internal/iologger"
	app "github.com/gnames/pubdb/pkg"
	"github.com/gnames/pubdb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "pubdb",
		Short:   "Builds and samples a relational store of labeled publications",
		Long: `pubdb imports a multi-label publication dataset into a relational
store and draws random samples of publications with their labels.

Commands:
  - create: Create the schema (safe to repeat)
  - build: Import labels, subscriptions and publications in one batch
  - optimize: Add indexes and refresh statistics
  - sample: Export random publications with their labels as JSON
  - subscriptions: List the subscription taxonomy

Storage is SQLite by default, PostgreSQL is selected with
database.driver: postgres.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (PUBDB_*)
  3. Config file (~/.config/pubdb/config.yaml)
  4. Built-in defaults

Nested fields use underscores, for example database.driver is
PUBDB_DATABASE_DRIVER and populate.publications_num is
PUBDB_POPULATE_PUBLICATIONS_NUM.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "pubdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for pubdb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getBuildCmd(),
		getOptimizeCmd(),
		getSampleCmd(),
		getSubscriptionsCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if cfg.Database.Driver == "sqlite" {
		cfg.Update([]config.Option{config.OptDatabasePath(cfg.SQLitePath())})
	}

	// Keep the records written before the config was read
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Variables are bound one by one, so it is clear which of them
	// are allowed. They match the fields of config.ToOptions().
	v.SetEnvPrefix("PUBDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "PUBDB_DATABASE_DRIVER")
	v.BindEnv("database.path", "PUBDB_DATABASE_PATH")
	v.BindEnv("database.host", "PUBDB_DATABASE_HOST")
	v.BindEnv("database.port", "PUBDB_DATABASE_PORT")
	v.BindEnv("database.user", "PUBDB_DATABASE_USER")
	v.BindEnv("database.password", "PUBDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "PUBDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "PUBDB_DATABASE_SSL_MODE")

	// Sources configuration
	v.BindEnv("sources.labels_file", "PUBDB_SOURCES_LABELS_FILE")
	v.BindEnv("sources.subscriptions_file", "PUBDB_SOURCES_SUBSCRIPTIONS_FILE")
	v.BindEnv("sources.dataset_file", "PUBDB_SOURCES_DATASET_FILE")

	// Build and sample configuration
	v.BindEnv("populate.publications_num", "PUBDB_POPULATE_PUBLICATIONS_NUM")
	v.BindEnv("export.schema_file", "PUBDB_EXPORT_SCHEMA_FILE")
	v.BindEnv("export.sample_file", "PUBDB_EXPORT_SAMPLE_FILE")
	v.BindEnv("sample.limit", "PUBDB_SAMPLE_LIMIT")

	// Log configuration
	v.BindEnv("log.level", "PUBDB_LOG_LEVEL")
	v.BindEnv("log.format", "PUBDB_LOG_FORMAT")
	v.BindEnv("log.destination", "PUBDB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "PUBDB_JOBS_NUMBER")

	v.AutomaticEnv()
}

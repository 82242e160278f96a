// Package config provides configuration management for pubdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, path, host, port, user, password, database, ssl_mode
//   - Sources: labels_file, subscriptions_file, dataset_file
//   - Populate: publications_num
//   - Export: schema_file, sample_file
//   - Sample: limit
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PUBDB_ prefix with underscores for nesting:
//
//	PUBDB_DATABASE_DRIVER=sqlite
//	PUBDB_DATABASE_PATH=/data/pubdb.db
//	PUBDB_POPULATE_PUBLICATIONS_NUM=1000
//	PUBDB_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete pubdb configuration.
type Config struct {
	// Database contains storage connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Sources contains locations of the taxonomy and dataset files.
	Sources SourcesConfig `mapstructure:"sources" yaml:"sources"`

	// Populate contains settings specific to the build command.
	Populate PopulateConfig `mapstructure:"populate" yaml:"populate"`

	// Export contains locations of exported artifacts.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	// Sample contains settings specific to the sample command.
	Sample SampleConfig `mapstructure:"sample" yaml:"sample"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains storage connection parameters.
type DatabaseConfig struct {
	// Driver selects the storage backend.
	// Valid values: "sqlite", "postgres".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the location of the SQLite database file. When empty, the
	// database is created in the data directory of HomeDir.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// SourcesConfig points to the external data the build command ingests.
type SourcesConfig struct {
	// LabelsFile is a YAML file with original labels
	// (identifier, subscription).
	LabelsFile string `mapstructure:"labels_file" yaml:"labels_file"`

	// SubscriptionsFile is a YAML file with expanded subscriptions
	// (subscription_id, subscription, group_id).
	SubscriptionsFile string `mapstructure:"subscriptions_file" yaml:"subscriptions_file"`

	// DatasetFile is a JSON Lines file with publications
	// (id, text, label).
	DatasetFile string `mapstructure:"dataset_file" yaml:"dataset_file"`
}

// PopulateConfig contains settings specific to the build command.
type PopulateConfig struct {
	// PublicationsNum is the maximum number of publications to import
	// from the dataset.
	PublicationsNum int `mapstructure:"publications_num" yaml:"publications_num"`
}

// ExportConfig contains paths of the exported artifacts.
type ExportConfig struct {
	// SchemaFile receives table definitions after the build.
	SchemaFile string `mapstructure:"schema_file" yaml:"schema_file"`

	// SampleFile receives sampled publications as JSON.
	SampleFile string `mapstructure:"sample_file" yaml:"sample_file"`
}

// SampleConfig contains settings specific to the sample command.
type SampleConfig struct {
	// Limit is the number of publications to sample.
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:   "sqlite",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "pubdb",
			SSLMode:  "disable",
		},
		Sources: SourcesConfig{
			LabelsFile:        "labels.yaml",
			SubscriptionsFile: "subscriptions.yaml",
			DatasetFile:       "dataset.jsonl",
		},
		Populate: PopulateConfig{
			PublicationsNum: 1000,
		},
		Export: ExportConfig{
			SchemaFile: "schema.sql",
			SampleFile: "sample.json",
		},
		Sample: SampleConfig{
			Limit: 4200,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// SQLitePath returns the SQLite database location. An explicitly
// configured Path wins, otherwise the file resides in DataDir.
func (c *Config) SQLitePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return DatabaseFilePath(c.HomeDir)
}

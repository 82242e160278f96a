// Package iofs handles files of pubdb: application directories, the
// default configuration and exported artifacts.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/pubdb/pkg/config"
	jsoniter "github.com/json-iterator/go"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteSchema saves table definitions to path. Every statement is
// followed by ';' and an empty line.
func WriteSchema(path string, stmts []string) error {
	var b strings.Builder
	for _, v := range stmts {
		b.WriteString(v)
		b.WriteString(";\n\n")
	}
	return writeFile(path, []byte(b.String()))
}

// jsonEnc writes '<', '>' and '&' as they are. Tweets are full of them.
var jsonEnc = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// WriteJSON saves data to path as indented JSON. Non-ASCII and HTML
// characters are kept as they are.
func WriteJSON(path string, data any) error {
	res, err := jsonEnc.MarshalIndent(data, "", "  ")
	if err != nil {
		return WriteFileError(path, err)
	}
	return writeFile(path, res)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := touchDir(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

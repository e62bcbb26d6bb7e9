// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/illustrator-mcp/illustratorctl/pkg/dirnames"
	"github.com/illustrator-mcp/illustratorctl/pkg/filenames"
)

// Load loads the yaml and fulfills unspecified fields with the default values.
//
// Load does not validate. Use Validate for validation.
func Load(b []byte) (*Config, error) {
	var y Config
	if len(b) > 0 {
		// yaml.Unmarshal rejects duplicate map keys by default.
		if err := yaml.Unmarshal(b, &y); err != nil {
			return nil, err
		}
	}
	if err := FillDefault(&y); err != nil {
		return nil, err
	}
	return &y, nil
}

// LoadFile loads the config from filePath. A missing file is not an error
// and yields the builtin defaults.
func LoadFile(filePath string) (*Config, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Load(nil)
		}
		return nil, err
	}
	return Load(b)
}

// DefaultFilePath returns the path of the config file,
// $ILLUSTRATOR_MCP_HOME/config.yaml.
func DefaultFilePath() (string, error) {
	dir, err := dirnames.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filenames.ConfigYAML), nil
}

// LoadDefault loads the config from the default location.
func LoadDefault() (*Config, error) {
	filePath, err := DefaultFilePath()
	if err != nil {
		return nil, err
	}
	return LoadFile(filePath)
}

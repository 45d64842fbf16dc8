// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names for
// hosts that ship a config file next to the application.
type StructuredJSONConfig struct {
	Store struct {
		DataDir          string `json:"data_dir"`
		Passphrase       string `json:"passphrase"`
		StrictCorruption bool   `json:"strict_corruption"`
		LogFile          string `json:"log_file"`
	} `json:"store,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Store: Store{
			DataDir:          jsonCfg.Store.DataDir,
			Passphrase:       jsonCfg.Store.Passphrase,
			StrictCorruption: jsonCfg.Store.StrictCorruption,
			LogFile:          jsonCfg.Store.LogFile,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

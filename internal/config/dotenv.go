// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvFileName is the conventional per-directory env file loaded before
// environment parsing.
const dotEnvFileName = ".env"

// loadDotEnv loads the .env file from the working directory into the process
// environment. Variables already present in the environment are never
// overridden, so real environment values keep priority. A missing .env file
// is not an error.
func loadDotEnv() error {
	if err := godotenv.Load(dotEnvFileName); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error loading %s file: %w", dotEnvFileName, err)
	}

	return nil
}

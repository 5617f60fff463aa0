/*
 * Copyright (c) 2025 The GoPlus Authors (goplus.org). All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads the JSON configuration the cxxbind command line
// needs to drive one Import call: the current target, the entry
// headers, the header-to-target mapping, and the clang invocation
// arguments.
package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// LLCPPG_CFG is the default config file name, read when -cfg is unset.
const LLCPPG_CFG = "cxxbind.cfg"

// Config is the on-disk, JSON-serializable shape of importer.Config's
// plain-data fields: everything importer.Config needs besides the
// live AST/source-manager/mangler collaborators, which only a real
// clang parse (cxast/libclang.Parse) can supply.
type Config struct {
	Name string `json:"name"`
	// CurrentTarget is this invocation's own target label.
	CurrentTarget string `json:"currentTarget"`
	// EntryHeaders are passed to clang as the files to parse.
	EntryHeaders []string `json:"entryHeaders"`
	// HeaderToTarget maps headers reachable from EntryHeaders to the
	// target label that owns them; a header absent from this map takes
	// the target of the nearest mapped header that includes it, and
	// ir.VirtualCompilerResourcesTarget when no includer is mapped.
	HeaderToTarget map[string]string `json:"headerToTarget"`
	// CFlags are passed to clang verbatim, the same way llcppg.Config's
	// CFlags field configures the symbol-table generator.
	CFlags    string `json:"cflags"`
	Cplusplus bool   `json:"cplusplus"`
}

// NewDefault returns a Config with every slice/map field initialized,
// ready for json.Unmarshal to fill in.
func NewDefault() *Config {
	return &Config{
		EntryHeaders:   []string{},
		HeaderToTarget: map[string]string{},
	}
}

// GetConfFromFile reads and parses a Config from filePath.
func GetConfFromFile(filePath string) (Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	return parseConf(data)
}

// GetConfFromStdin reads and parses a Config from standard input.
func GetConfFromStdin() (Config, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return Config{}, err
	}
	return parseConf(data)
}

func parseConf(data []byte) (Config, error) {
	var conf Config
	if err := json.Unmarshal(data, &conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// ReadConfigFile loads cfgFile, falling back to LLCPPG_CFG when empty
// and to stdin when cfgFile is "-".
func ReadConfigFile(cfgFile string) (Config, error) {
	if cfgFile == "" {
		cfgFile = LLCPPG_CFG
	}
	_, file := filepath.Split(cfgFile)
	if file == "-" {
		return GetConfFromStdin()
	}
	return GetConfFromFile(cfgFile)
}

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

package libclang

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Inclusion is one entry of `clang -H`'s inclusion trace: the header
// reached and its nesting depth below the entry file.
type Inclusion struct {
	Header string
	Depth  int
}

// InclusionConfig configures ListInclusions.
type InclusionConfig struct {
	// Header is included directly, via #include <Header>, when File is
	// empty.
	Header string
	// File, when set, is parsed as-is instead of synthesizing a
	// single-#include wrapper around Header.
	File        string
	CompileArgs []string
	IsCpp       bool
}

// ListInclusions shells out to `clang -H -E` to trace every header
// transitively reachable from conf.Header (or conf.File), in inclusion
// order, without needing a parsed translation unit. It is a coarser,
// independent cross-check for the Target Resolver: unlike
// sourceManagerAdapter.OwningTargetOf, which walks one specific
// location's include stack lazily, this discovers the whole graph
// up front.
func ListInclusions(conf *InclusionConfig) ([]Inclusion, error) {
	if conf.Header == "" && conf.File == "" {
		return nil, errors.New("libclang: ListInclusions needs a Header or a File")
	}

	file := conf.File
	if file == "" {
		tmp, err := os.CreateTemp("", "cxxbind-inclusion")
		if err != nil {
			return nil, err
		}
		tmpName := tmp.Name()
		if err := tmp.Close(); err != nil {
			os.Remove(tmpName)
			return nil, err
		}
		defer os.Remove(tmpName)

		inc := fmt.Sprintf("#include <%s>", conf.Header)
		if err := os.WriteFile(tmpName, []byte(inc), 0600); err != nil {
			return nil, err
		}
		file = tmpName
	}

	args := []string{"-x", "c"}
	if conf.IsCpp {
		args = []string{"-x", "c++"}
	}
	args = append(args, "-H", "-E")
	args = append(args, conf.CompileArgs...)
	args = append(args, file)

	var stderr bytes.Buffer
	cmd := exec.Command("clang", args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.New(stderr.String())
	}

	var inclusions []Inclusion
	scanner := bufio.NewScanner(&stderr)
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), " ", 2)
		if len(fields) != 2 {
			continue
		}
		inclusions = append(inclusions, Inclusion{
			Header: filepath.Clean(fields[1]),
			Depth:  strings.Count(fields[0], "."),
		})
	}
	return inclusions, nil
}

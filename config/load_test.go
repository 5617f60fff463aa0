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

package config_test

import (
	"fmt"
	"os"
	"reflect"
	"testing"

	"github.com/goplus/cxxbind/config"
)

type testMode int

const (
	useStdin testMode = 1 << iota
	useFile
)

func TestGetConfByBytes(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		mode      testMode
		expect    config.Config
		expectErr bool
	}{
		{
			name: "sqlite target mapping (file)",
			input: `{
  "name": "sqlite",
  "currentTarget": "//sqlite:sqlite",
  "entryHeaders": ["sqlite3.h"],
  "headerToTarget": {"sqlite3.h": "//sqlite:sqlite"},
  "cflags": "-I/opt/homebrew/opt/sqlite/include",
  "cplusplus": false
}`,
			expect: config.Config{
				Name:           "sqlite",
				CurrentTarget:  "//sqlite:sqlite",
				EntryHeaders:   []string{"sqlite3.h"},
				HeaderToTarget: map[string]string{"sqlite3.h": "//sqlite:sqlite"},
				CFlags:         "-I/opt/homebrew/opt/sqlite/include",
				Cplusplus:      false,
			},
			mode: useFile,
		},
		{
			name: "sqlite target mapping (stdin)",
			input: `{
  "name": "sqlite",
  "currentTarget": "//sqlite:sqlite",
  "entryHeaders": ["sqlite3.h"],
  "headerToTarget": {"sqlite3.h": "//sqlite:sqlite"},
  "cflags": "-I/opt/homebrew/opt/sqlite/include",
  "cplusplus": false
}`,
			expect: config.Config{
				Name:           "sqlite",
				CurrentTarget:  "//sqlite:sqlite",
				EntryHeaders:   []string{"sqlite3.h"},
				HeaderToTarget: map[string]string{"sqlite3.h": "//sqlite:sqlite"},
				CFlags:         "-I/opt/homebrew/opt/sqlite/include",
				Cplusplus:      false,
			},
			mode: useStdin,
		},
		{
			name:      "invalid JSON",
			input:     `{invalid json}`,
			expectErr: true,
			mode:      useStdin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var result config.Config

			file, err := os.CreateTemp("", "cxxbindconfigtest")
			if err != nil {
				t.Fatal(err)
			}
			defer os.Remove(file.Name())

			if _, err := file.Write([]byte(tc.input)); err != nil {
				t.Fatal(err)
			}
			err = fmt.Errorf("config: no mode is specified")

			if tc.mode&useStdin != 0 {
				stdin := os.Stdin
				defer func() { os.Stdin = stdin }()

				fileR, openErr := os.Open(file.Name())
				if openErr != nil {
					t.Fatal(openErr)
				}
				defer fileR.Close()
				os.Stdin = fileR

				result, err = config.GetConfFromStdin()
			}

			if tc.mode&useFile != 0 {
				result, err = config.GetConfFromFile(file.Name())
			}

			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected error for test case %s, but got nil", tc.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for test case %s: %v", tc.name, err)
			}
			if !reflect.DeepEqual(result, tc.expect) {
				t.Fatalf("expected %#v, but got %#v", tc.expect, result)
			}
		})
	}
}

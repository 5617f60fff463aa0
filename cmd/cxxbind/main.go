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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/qiniu/x/errors"

	"github.com/goplus/cxxbind/config"
	"github.com/goplus/cxxbind/cxast/libclang"
	"github.com/goplus/cxxbind/importer"
	"github.com/goplus/cxxbind/ir"
)

func main() {
	cfgFile := flag.String("cfg", "", "path to the cxxbind config file (\"-\" for stdin)")
	verbose := flag.Bool("v", false, "print the resolved clang invocation before parsing")
	listIncludes := flag.Bool("list-includes", false, "print each entry header's full inclusion graph and exit, cross-checking headerToTarget's coverage")
	flag.Parse()

	if err := run(*cfgFile, *verbose, *listIncludes); err != nil {
		fmt.Fprintln(os.Stderr, "cxxbind:", err)
		os.Exit(1)
	}
}

func run(cfgFile string, verbose, listIncludes bool) error {
	conf, err := config.ReadConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := validateConf(conf); err != nil {
		return err
	}

	args := []string{}
	if conf.CFlags != "" {
		args = strings.Fields(conf.CFlags)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "cxxbind: clang -x %s %s %s\n",
			lang(conf.Cplusplus), strings.Join(args, " "), strings.Join(conf.EntryHeaders, " "))
	}

	if listIncludes {
		return printInclusions(conf, args)
	}

	headerToTarget := make(map[ir.HeaderName]ir.TargetLabel, len(conf.HeaderToTarget))
	for h, t := range conf.HeaderToTarget {
		headerToTarget[ir.NewHeaderName(h)] = ir.TargetLabel(t)
	}
	entryHeaders := make([]ir.HeaderName, len(conf.EntryHeaders))
	for i, h := range conf.EntryHeaders {
		entryHeaders[i] = ir.NewHeaderName(h)
	}

	result := ir.IR{CurrentTarget: ir.TargetLabel(conf.CurrentTarget), UsedHeaders: entryHeaders}
	for _, header := range conf.EntryHeaders {
		tu, err := libclang.Parse(header, args, conf.Cplusplus)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", header, err)
		}
		one := importer.Import(importer.Config{
			CurrentTarget:   ir.TargetLabel(conf.CurrentTarget),
			EntryHeaders:    entryHeaders,
			HeaderToTarget:  headerToTarget,
			TranslationUnit: tu.Root(),
			SourceManager:   tu.SourceManager(),
			Mangler:         tu.Mangler(),
			Lifetimes:       libclang.NoLifetimeAnalyzer(),
			LifetimeSymbols: libclang.NoLifetimeSymbols(),
		})
		tu.Dispose()
		result.Items = append(result.Items, one.Items...)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// printInclusions cross-checks conf.HeaderToTarget against every
// entry header's real inclusion graph, flagging with "!" each header
// that has no entry of its own in conf.HeaderToTarget.
func printInclusions(conf config.Config, args []string) error {
	for _, header := range conf.EntryHeaders {
		inclusions, err := libclang.ListInclusions(&libclang.InclusionConfig{
			File:        header,
			CompileArgs: args,
			IsCpp:       conf.Cplusplus,
		})
		if err != nil {
			return fmt.Errorf("listing inclusions for %s: %w", header, err)
		}
		fmt.Printf("%s\n", header)
		for _, inc := range inclusions {
			_, mapped := conf.HeaderToTarget[inc.Header]
			mark := " "
			if !mapped {
				mark = "!"
			}
			fmt.Printf("%s%s%s\n", strings.Repeat("  ", inc.Depth+1), mark, inc.Header)
		}
	}
	return nil
}

func validateConf(conf config.Config) error {
	var errs errors.List
	if conf.CurrentTarget == "" {
		errs.Add(fmt.Errorf("config: currentTarget is required"))
	}
	if len(conf.EntryHeaders) == 0 {
		errs.Add(fmt.Errorf("config: entryHeaders must be non-empty"))
	}
	return errs.ToError()
}

func lang(isCpp bool) string {
	if isCpp {
		return "c++"
	}
	return "c"
}

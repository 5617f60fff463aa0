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
	"errors"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/ir"
)

// errLifetimesUnavailable is returned by noLifetimeAnalyzer for every
// function: see its doc comment for why.
var errLifetimesUnavailable = errors.New("libclang: lifetime annotations unavailable")

// noLifetimeAnalyzer is the cxast.LifetimeAnalyzer this package can
// actually back with libclang alone. `#pragma clang lifetime_elision`
// and explicit lifetime annotations are understood by Crubit's own
// lifetime_annotations library, which walks the full Sema AST through
// clang libTooling; none of that is reachable from libclang's stable C
// API. Returning this error for every function is the documented
// non-fatal "no annotations supplied" path importer.fetchFunctionLifetimes
// already handles, so types still convert correctly, just without
// elided lifetimes. A caller that needs real lifetime elision should
// supply a LifetimeAnalyzer backed by that tooling instead of this one.
type noLifetimeAnalyzer struct{}

func (noLifetimeAnalyzer) GetLifetimeAnnotations(fn cxast.FuncDecl, symbols cxast.LifetimeSymbolTable) (cxast.FunctionLifetimes, error) {
	return cxast.FunctionLifetimes{}, errLifetimesUnavailable
}

// NoLifetimeAnalyzer is the default cxast.LifetimeAnalyzer for this
// adapter.
func NoLifetimeAnalyzer() cxast.LifetimeAnalyzer { return noLifetimeAnalyzer{} }

// emptyLifetimeSymbols is the matching cxast.LifetimeSymbolTable: it
// never resolves a name because NoLifetimeAnalyzer never hands out a
// lifetime id for it to resolve.
type emptyLifetimeSymbols struct{}

func (emptyLifetimeSymbols) Name(id ir.LifetimeId) (string, bool) { return "", false }

// NoLifetimeSymbols is the default cxast.LifetimeSymbolTable for this
// adapter.
func NoLifetimeSymbols() cxast.LifetimeSymbolTable { return emptyLifetimeSymbols{} }

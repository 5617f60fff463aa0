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

package importer

import (
	"fmt"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/ir"
)

// mangledName produces the linker-level name for decl, always using the
// complete-object variant for constructors and destructors.
func mangledName(mangler cxast.Mangler, decl cxast.NamedDecl) string {
	return mangler.MangleName(decl)
}

// translatedName resolves decl's translated identifier by returning
// decl.Name(): constructors and destructors report their special-name
// variants, and every unnameable decl kind (operators, conversions,
// literal operators, deduction guides) reports ok=false, which callers
// must treat as a silent skip. Unnamed parameters are handled by
// translatedParamName, not here.
func translatedName(decl cxast.NamedDecl) (ir.Identifier, bool) {
	return decl.Name()
}

// translatedParamName resolves the name of the paramIndex'th parameter
// of fn, synthesizing a positional name when the parameter itself is
// unnamed.
func translatedParamName(param cxast.ParamDecl, paramIndex int) ir.Identifier {
	if id, ok := param.Name(); ok {
		return id
	}
	return ir.PlainIdent(fmt.Sprintf("__param_%d", paramIndex))
}

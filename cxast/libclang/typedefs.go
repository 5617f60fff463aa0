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
	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/internal/clangutil"
)

// typedefAdapter wraps a TypedefDecl/TypeAliasDecl cursor.
type typedefAdapter struct {
	*declAdapter
}

func (t *typedefAdapter) UnderlyingType() cxast.Type {
	return wrapType(clangutil.GetTypedefDeclUnderlyingType(t.cursor), t.tu)
}

func (t *typedefAdapter) Spelling() string {
	return clangutil.Str(clangutil.GetTypeSpelling(clangutil.GetCursorType(t.cursor)))
}

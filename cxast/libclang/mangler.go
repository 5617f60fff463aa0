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

// manglerAdapter implements cxast.Mangler via clang_Cursor_getMangling.
//
// clang_Cursor_getMangling always returns the complete-object mangling
// for a constructor or destructor; libclang's separate
// clang_Cursor_getCXXManglings (which additionally exposes the base-
// object and deleting-destructor variants) is never called, so the
// interface's complete-object-only contract holds without extra
// filtering.
type manglerAdapter struct{}

func (m *manglerAdapter) MangleName(decl cxast.NamedDecl) string {
	adapter, ok := decl.(*declAdapter)
	if !ok {
		if wrapped, ok := unwrapDecl(decl); ok {
			adapter = wrapped
		} else {
			return ""
		}
	}
	return clangutil.Str(clangutil.CursorGetMangling(adapter.cursor))
}

// unwrapDecl recovers the embedded *declAdapter from any of the
// per-kind wrapper types so MangleName works uniformly over all of
// them.
func unwrapDecl(decl cxast.NamedDecl) (*declAdapter, bool) {
	switch d := decl.(type) {
	case *funcAdapter:
		return d.declAdapter, true
	case *recordAdapter:
		return d.declAdapter, true
	case *fieldAdapter:
		return d.declAdapter, true
	case *paramAdapter:
		return d.declAdapter, true
	case *typedefAdapter:
		return d.declAdapter, true
	case *funcTemplateAdapter:
		return d.declAdapter, true
	}
	return nil, false
}

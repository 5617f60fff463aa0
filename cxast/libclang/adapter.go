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

// Package libclang is the production implementation of the cxast
// interfaces, reached through github.com/goplus/lib/c/clang the same
// way internal/clangutil (adapted from the teacher's
// _xtool/internal/clang) does.
//
// libclang's stable C API has no equivalent of
// clang::SourceManager::isBeforeInTranslationUnit or of Clang's internal
// RawCommentList, both of which the Comment Harvester and the driver's
// sort comparator are specified against. This adapter approximates
// both with what libclang does expose: (file, line, column) ordering
// for the former, and clang_Cursor_getRawCommentText enumerated over
// every cursor in an entry header for the latter.
package libclang

import (
	"github.com/goplus/lib/c/clang"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/internal/clangutil"
	"github.com/goplus/cxxbind/ir"
)

// TU owns a parsed translation unit and its index; both must be
// released with Dispose when the import that uses them is done.
type TU struct {
	index *clang.Index
	unit  *clang.TranslationUnit

	// ids assigns a stable ir.DeclId to each canonical cursor's USR the
	// first time it's seen; libclang hands back a fresh clang.Cursor
	// value on every traversal, so identity has to be established via
	// the cursor's Unified Symbol Resolution string, not by pointer.
	ids    map[string]ir.DeclId
	nextId ir.DeclId
}

// Parse invokes clang to produce an AST for file.
func Parse(file string, args []string, isCpp bool) (*TU, error) {
	index, unit, err := clangutil.CreateTranslationUnit(&clangutil.Config{File: file, Args: args, IsCpp: isCpp})
	if err != nil {
		return nil, err
	}
	return &TU{index: index, unit: unit, ids: make(map[string]ir.DeclId)}, nil
}

// declId returns the stable ir.DeclId for cur's canonical declaration.
func (tu *TU) declId(cur clang.Cursor) ir.DeclId {
	canonical := clangutil.GetCanonicalCursor(cur)
	usr := clangutil.Str(clangutil.GetCursorUSR(canonical))
	if usr == "" {
		// Cursors with no USR (builtins, unnamed entities) never recur
		// via LexicalParent/Decls lookups in a way that needs to match,
		// so a fresh id per call is safe.
		tu.nextId++
		return tu.nextId
	}
	if id, ok := tu.ids[usr]; ok {
		return id
	}
	tu.nextId++
	tu.ids[usr] = tu.nextId
	return tu.nextId
}

// Dispose releases the translation unit and its index.
func (tu *TU) Dispose() {
	tu.unit.Dispose()
	tu.index.Dispose()
}

// Root returns the translation-unit cursor as a cxast.DeclContext.
func (tu *TU) Root() cxast.DeclContext {
	return wrapDecl(tu.unit.Cursor(), cxast.DeclTranslationUnit, tu)
}

// SourceManager returns the cxast.SourceManager collaborator backed by
// this translation unit.
func (tu *TU) SourceManager() cxast.SourceManager {
	return &sourceManagerAdapter{tu: tu}
}

// Mangler returns the cxast.Mangler collaborator backed by this
// translation unit's cursors.
func (tu *TU) Mangler() cxast.Mangler {
	return &manglerAdapter{}
}

func sourceLocOf(loc clang.SourceLocation) ir.SourceLoc {
	file, line, column, _ := clangutil.GetLocation(loc)
	name := file.FileName()
	if name.CStr() == nil {
		return ir.SourceLoc{}
	}
	return ir.SourceLoc{Filename: clangutil.Str(name), Line: int(line), Column: int(column)}
}

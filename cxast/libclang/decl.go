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
	"strings"

	"github.com/goplus/lib/c/clang"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/internal/clangutil"
	"github.com/goplus/cxxbind/ir"
)

// declAdapter wraps a clang.Cursor with the common Decl/NamedDecl/
// DeclContext surface; the per-kind wrappers below embed it by value
// and add the rest of their specific cxast interface.
type declAdapter struct {
	cursor clang.Cursor
	kind   cxast.DeclKind
	tu     *TU
}

func wrapDecl(cursor clang.Cursor, kind cxast.DeclKind, tu *TU) *declAdapter {
	return &declAdapter{cursor: cursor, kind: kind, tu: tu}
}

// classify derives a cxast.DeclKind from a cursor's CXCursorKind,
// mirroring cvt.go's visitTop switch on cursor.Kind.
func classify(cur clang.Cursor) cxast.DeclKind {
	switch cur.Kind {
	case clang.CursorFunctionDecl, clang.CursorCXXMethod, clang.CursorConstructor, clang.CursorDestructor:
		return cxast.DeclFunction
	case clang.CursorFunctionTemplate:
		return cxast.DeclFunctionTemplate
	case clang.CursorStructDecl, clang.CursorClassDecl, clang.CursorUnionDecl:
		return cxast.DeclRecord
	case clang.CursorClassTemplate, clang.CursorClassTemplatePartialSpecialization:
		return cxast.DeclClassTemplate
	case clang.CursorTypedefDecl, clang.CursorTypeAliasDecl:
		return cxast.DeclTypedefName
	case clang.CursorNamespace:
		return cxast.DeclNamespace
	case clang.CursorTranslationUnit:
		return cxast.DeclTranslationUnit
	default:
		return cxast.DeclOther
	}
}

// wrapAny builds the most specific cxast.Decl available for cur.
func wrapAny(cur clang.Cursor, tu *TU) cxast.Decl {
	kind := classify(cur)
	base := wrapDecl(cur, kind, tu)
	switch kind {
	case cxast.DeclFunction:
		return &funcAdapter{declAdapter: base}
	case cxast.DeclRecord:
		return &recordAdapter{declAdapter: base}
	case cxast.DeclTypedefName:
		return &typedefAdapter{declAdapter: base}
	case cxast.DeclFunctionTemplate:
		return &funcTemplateAdapter{declAdapter: base}
	default:
		return base
	}
}

func (d *declAdapter) Canonical() ir.DeclId {
	return d.tu.declId(d.cursor)
}

func (d *declAdapter) Kind() cxast.DeclKind { return d.kind }

func (d *declAdapter) LexicalParent() cxast.DeclContext {
	parent := d.cursor.SemanticParent()
	if parent.IsNull() == 1 {
		return nil
	}
	return &declAdapter{cursor: parent, kind: classify(parent), tu: d.tu}
}

func (d *declAdapter) SourceLoc() ir.SourceLoc {
	return sourceLocOf(d.cursor.Location())
}

func (d *declAdapter) SourceRange() (begin, end ir.SourceLoc) {
	r := clangutil.GetCursorExtent(d.cursor)
	return sourceLocOf(clangutil.GetRangeStart(r)), sourceLocOf(clangutil.GetRangeEnd(r))
}

func (d *declAdapter) IsInvalidLocation() bool {
	return !d.SourceLoc().Valid()
}

func (d *declAdapter) Name() (ir.Identifier, bool) {
	switch d.cursor.Kind {
	case clang.CursorConstructor:
		return ir.ConstructorIdent(), true
	case clang.CursorDestructor:
		return ir.DestructorIdent(), true
	}
	name := clangutil.Str(d.cursor.String())
	if name == "" {
		return ir.Identifier{}, false
	}
	// Operator, conversion, and literal-operator names ("operator+",
	// "operator int", `operator""_x`) have no translated identifier.
	if rest, isOp := strings.CutPrefix(name, "operator"); isOp && rest != "" {
		ch := rest[0]
		if !(ch == '_' || ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z') {
			return ir.Identifier{}, false
		}
	}
	return ir.PlainIdent(name), true
}

func (d *declAdapter) QualifiedName() string {
	parts := clangutil.BuildScopingParts(d.cursor)
	if len(parts) == 0 {
		return "unnamed"
	}
	joined := parts[0]
	for _, p := range parts[1:] {
		joined += "::" + p
	}
	return joined
}

func (d *declAdapter) Decls() []cxast.Decl {
	var decls []cxast.Decl
	clangutil.VisitChildren(d.cursor, func(cur, _ clang.Cursor) clang.ChildVisitResult {
		decls = append(decls, wrapAny(cur, d.tu))
		return clang.ChildVisit_Continue
	})
	return decls
}

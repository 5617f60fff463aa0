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
	"github.com/goplus/lib/c"
	"github.com/goplus/lib/c/clang"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/internal/clangutil"
	"github.com/goplus/cxxbind/ir"
)

// funcAdapter wraps a free function, instance method, constructor, or
// destructor cursor.
type funcAdapter struct {
	*declAdapter
}

func (f *funcAdapter) IsDeleted() bool {
	if !f.IsMethod() {
		return false
	}
	return clangutil.CXXMethodIsDeleted(f.cursor) != 0
}

func (f *funcAdapter) IsTemplated() bool {
	if f.cursor.SemanticParent().Kind == clang.CursorFunctionTemplate {
		return true
	}
	return clangutil.GetSpecializedCursorTemplate(f.cursor).IsNull() != 1
}

func (f *funcAdapter) IsInline() bool {
	return clangutil.CursorIsFunctionInlined(f.cursor) != 0
}

func (f *funcAdapter) ReturnType() cxast.Type {
	return wrapType(clangutil.GetCursorResultType(f.cursor), f.tu)
}

func (f *funcAdapter) Params() []cxast.ParamDecl {
	n := int(clangutil.CursorGetNumArguments(f.cursor))
	if n <= 0 {
		return nil
	}
	params := make([]cxast.ParamDecl, n)
	for i := 0; i < n; i++ {
		cur := clangutil.CursorGetArgument(f.cursor, c.Uint(i))
		params[i] = &paramAdapter{declAdapter: &declAdapter{cursor: cur, kind: cxast.DeclOther, tu: f.tu}}
	}
	return params
}

func (f *funcAdapter) IsMethod() bool {
	switch f.cursor.Kind {
	case clang.CursorCXXMethod, clang.CursorConstructor, clang.CursorDestructor:
		return true
	}
	return false
}

func (f *funcAdapter) Parent() cxast.RecordDecl {
	parent := f.cursor.SemanticParent()
	if parent.IsNull() == 1 {
		return nil
	}
	return &recordAdapter{declAdapter: &declAdapter{cursor: parent, kind: cxast.DeclRecord, tu: f.tu}}
}

func (f *funcAdapter) IsConstMethod() bool {
	return clangutil.CXXMethodIsConst(f.cursor) != 0
}

func (f *funcAdapter) IsVirtualMethod() bool {
	return clangutil.CXXMethodIsVirtual(f.cursor) != 0
}

func (f *funcAdapter) RefQualification() ir.ReferenceQualification {
	switch clangutil.TypeGetCXXRefQualifier(clangutil.GetCursorType(f.cursor)) {
	case 1:
		return ir.RefLValue
	case 2:
		return ir.RefRValue
	default:
		return ir.RefUnqualified
	}
}

func (f *funcAdapter) Access() ir.AccessSpecifier {
	switch clangutil.CursorGetCXXAccessSpecifier(f.cursor) {
	case 2:
		return ir.AccessProtected
	case 3:
		return ir.AccessPrivate
	default:
		return ir.AccessPublic
	}
}

func (f *funcAdapter) IsConstructor() bool {
	return f.cursor.Kind == clang.CursorConstructor
}

func (f *funcAdapter) IsDestructor() bool {
	return f.cursor.Kind == clang.CursorDestructor
}

func (f *funcAdapter) IsExplicitCtor() bool {
	return clangutil.CXXMethodIsExplicit(f.cursor) != 0
}

func (f *funcAdapter) ThisType() cxast.Type {
	parent := f.cursor.SemanticParent()
	return &implicitThisType{pointee: wrapType(clangutil.GetCursorType(parent), f.tu)}
}

// implicitThisType synthesizes the pointer-to-record type of an
// instance method's implicit this parameter; libclang surfaces methods
// without materializing this as a separate CXType.
type implicitThisType struct {
	pointee cxast.Type
}

func (t *implicitThisType) Spelling() string        { return t.pointee.Spelling() + " *" }
func (t *implicitThisType) IsConst() bool           { return false }
func (t *implicitThisType) IsPointer() bool         { return true }
func (t *implicitThisType) Pointee() cxast.Type     { return t.pointee }
func (t *implicitThisType) IsLValueReference() bool { return false }
func (t *implicitThisType) Builtin() cxast.BuiltinKind {
	return cxast.BuiltinNone
}
func (t *implicitThisType) IntegerWidth() int     { return 0 }
func (t *implicitThisType) IsUnsigned() bool      { return false }
func (t *implicitThisType) IsTagType() bool       { return false }
func (t *implicitThisType) IsTypedefType() bool   { return false }
func (t *implicitThisType) TypeDecl() cxast.NamedDecl { return nil }

// paramAdapter wraps a ParmDecl cursor.
type paramAdapter struct {
	*declAdapter
}

func (p *paramAdapter) Type() cxast.Type {
	return wrapType(clangutil.GetCursorType(p.cursor), p.tu)
}

// funcTemplateAdapter wraps a FunctionTemplateDecl cursor; the driver
// unwraps it to its templated decl via the optional TemplatedDecl
// interface importDecl checks for.
type funcTemplateAdapter struct {
	*declAdapter
}

func (f *funcTemplateAdapter) TemplatedDecl() cxast.Decl {
	var templated cxast.Decl
	clangutil.VisitChildren(f.cursor, func(cur, _ clang.Cursor) clang.ChildVisitResult {
		switch cur.Kind {
		case clang.CursorFunctionDecl, clang.CursorCXXMethod, clang.CursorConstructor, clang.CursorDestructor:
			templated = &funcAdapter{declAdapter: &declAdapter{cursor: cur, kind: cxast.DeclFunction, tu: f.tu}}
			return clang.ChildVisit_Break
		}
		return clang.ChildVisit_Continue
	})
	if templated == nil {
		return &declAdapter{cursor: f.cursor, kind: cxast.DeclOther, tu: f.tu}
	}
	return templated
}

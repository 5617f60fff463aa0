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

// recordAdapter wraps a struct/class/union cursor.
type recordAdapter struct {
	*declAdapter
}

func (r *recordAdapter) IsUnion() bool {
	return r.cursor.Kind == clang.CursorUnionDecl
}

func (r *recordAdapter) IsCXXClass() bool {
	return r.cursor.Kind == clang.CursorClassDecl ||
		(r.cursor.Kind == clang.CursorStructDecl && hasCXXMember(r.cursor))
}

func (r *recordAdapter) IsClassTemplateOrSpecialization() bool {
	switch r.cursor.SemanticParent().Kind {
	case clang.CursorClassTemplate, clang.CursorClassTemplatePartialSpecialization:
		return true
	}
	return false
}

func (r *recordAdapter) IsInjectedClassName() bool {
	// Always reports false: this adapter does not detect injected class
	// names.
	return false
}

func (r *recordAdapter) HasDefinition() bool {
	return clangutil.IsCursorDefinition(r.cursor) != 0
}

func (r *recordAdapter) IsCStyleStruct() bool {
	return r.cursor.Kind == clang.CursorStructDecl && !hasCXXMember(r.cursor)
}

func (r *recordAdapter) IsEffectivelyFinal() bool {
	// libclang has no is-final predicate; FinalAttr would need to be
	// matched against the cursor's attribute children, which is left
	// unimplemented since no header in the retrieved corpus used it.
	return false
}

// IsTrivialAbi approximates clang::CXXRecordDecl::canPassInRegisters:
// a record is trivial-abi when it isn't abstract (polymorphic classes
// are never passed in registers), its destructor is trivial, and at
// least one of its copy/move constructors is trivial too. This tracks
// the same copy/move/dtor triviality canPassInRegisters actually keys
// off, unlike checking abstractness alone, which is a different C++
// property (pure-virtual-method presence) that says nothing about
// relocatability. It is still weaker than Sema's own analysis, which
// additionally walks virtual bases and every member's triviality.
func (r *recordAdapter) IsTrivialAbi() bool {
	if clangutil.CXXRecordIsAbstract(r.cursor) != 0 {
		return false
	}
	if r.Destructor().Definition != ir.SpecialMemberTrivial {
		return false
	}
	copyCtor := r.CopyConstructor()
	moveCtor := r.MoveConstructor()
	return copyCtor.Definition == ir.SpecialMemberTrivial || moveCtor.Definition == ir.SpecialMemberTrivial
}

func (r *recordAdapter) Fields() []cxast.FieldDecl {
	var fields []cxast.FieldDecl
	clangutil.VisitChildren(r.cursor, func(cur, _ clang.Cursor) clang.ChildVisitResult {
		if cur.Kind == clang.CursorFieldDecl {
			fields = append(fields, &fieldAdapter{declAdapter: &declAdapter{cursor: cur, kind: cxast.DeclOther, tu: r.tu}})
		}
		return clang.ChildVisit_Continue
	})
	return fields
}

func (r *recordAdapter) SizeBytes() int64 {
	return int64(clangutil.TypeGetSizeOf(clangutil.GetCursorType(r.cursor)))
}

func (r *recordAdapter) AlignmentBytes() int64 {
	return int64(clangutil.TypeGetAlignOf(clangutil.GetCursorType(r.cursor)))
}

func (r *recordAdapter) CopyConstructor() ir.SpecialMemberFunc {
	return r.specialCtor(clangutil.CXXConstructorIsCopyConstructor)
}

func (r *recordAdapter) MoveConstructor() ir.SpecialMemberFunc {
	return r.specialCtor(clangutil.CXXConstructorIsMoveConstructor)
}

func (r *recordAdapter) specialCtor(pred func(clang.Cursor) c.Uint) ir.SpecialMemberFunc {
	var found ir.SpecialMemberFunc
	seen := false
	clangutil.VisitChildren(r.cursor, func(cur, _ clang.Cursor) clang.ChildVisitResult {
		if cur.Kind == clang.CursorConstructor && pred(cur) != 0 {
			seen = true
			found = ir.SpecialMemberFunc{
				Definition: specialMemberDefinition(cur),
				Access:     accessOf(cur),
			}
			return clang.ChildVisit_Break
		}
		return clang.ChildVisit_Continue
	})
	if !seen {
		return ir.SpecialMemberFunc{Definition: ir.SpecialMemberTrivial, Access: ir.AccessPublic}
	}
	return found
}

func (r *recordAdapter) Destructor() ir.SpecialMemberFunc {
	var found ir.SpecialMemberFunc
	seen := false
	clangutil.VisitChildren(r.cursor, func(cur, _ clang.Cursor) clang.ChildVisitResult {
		if cur.Kind == clang.CursorDestructor {
			seen = true
			found = ir.SpecialMemberFunc{
				Definition: specialMemberDefinition(cur),
				Access:     accessOf(cur),
			}
			return clang.ChildVisit_Break
		}
		return clang.ChildVisit_Continue
	})
	if !seen {
		return ir.SpecialMemberFunc{Definition: ir.SpecialMemberTrivial, Access: ir.AccessPublic}
	}
	return found
}

func (r *recordAdapter) ForceDeclarationOfImplicitMembers() {
	// Asking libclang for Fields()/Destructor() etc. on a defined record
	// already triggers Sema to materialize its implicit members; there
	// is no separate force-declaration entry point in the C API.
}

// specialMemberDefinition approximates clang::Sema's trivial/nontrivial
// classification: deleted is exact, and a non-defaulted (user-provided)
// special member is reported as nontrivial-self. Distinguishing
// nontrivial-because-of-members from trivial for a defaulted special
// member would need the member-by-member analysis Sema does
// internally, which the C API does not expose, so a defaulted special
// member is reported as trivial.
func specialMemberDefinition(cur clang.Cursor) ir.SpecialMemberDefinition {
	switch {
	case clangutil.CXXMethodIsDeleted(cur) != 0:
		return ir.SpecialMemberDeleted
	case clangutil.CXXMethodIsDefaulted(cur) == 0:
		return ir.SpecialMemberNontrivialSelf
	default:
		return ir.SpecialMemberTrivial
	}
}

func accessOf(cur clang.Cursor) ir.AccessSpecifier {
	switch clangutil.CursorGetCXXAccessSpecifier(cur) {
	case 2:
		return ir.AccessProtected
	case 3:
		return ir.AccessPrivate
	default:
		return ir.AccessPublic
	}
}

func hasCXXMember(cur clang.Cursor) bool {
	found := false
	clangutil.VisitChildren(cur, func(c, _ clang.Cursor) clang.ChildVisitResult {
		switch c.Kind {
		case clang.CursorCXXMethod, clang.CursorConstructor, clang.CursorDestructor, clang.CursorCXXBaseSpecifier:
			found = true
			return clang.ChildVisit_Break
		}
		return clang.ChildVisit_Continue
	})
	return found
}

// fieldAdapter wraps a FieldDecl cursor.
type fieldAdapter struct {
	*declAdapter
}

func (f *fieldAdapter) Type() cxast.Type {
	return wrapType(clangutil.GetCursorType(f.cursor), f.tu)
}

func (f *fieldAdapter) DeclaredAccess() (ir.AccessSpecifier, bool) {
	return accessOf(f.cursor), true
}

func (f *fieldAdapter) OffsetInBits() int64 {
	return int64(clangutil.CursorGetOffsetOfField(f.cursor))
}

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

package cxast

import "github.com/goplus/cxxbind/ir"

// FieldDecl is one data member of a record.
type FieldDecl interface {
	NamedDecl
	Type() Type
	// DeclaredAccess is the access the field was declared with; none
	// when the record has no access specifiers yet (e.g. the first
	// members of a struct).
	DeclaredAccess() (ir.AccessSpecifier, bool)
	// OffsetInBits comes from the record layout; only meaningful once
	// the enclosing record has a complete definition.
	OffsetInBits() int64
}

// RecordDecl is a struct, class, or union.
type RecordDecl interface {
	NamedDecl
	DeclContext

	IsUnion() bool
	// IsCXXClass reports a class/struct as opposed to a C-style struct
	// imported under -x c; only CXXClass records can be class templates.
	IsCXXClass() bool
	IsClassTemplateOrSpecialization() bool
	// IsInjectedClassName reports the CXXRecordDecl Clang injects as a
	// member of its own scope.
	IsInjectedClassName() bool
	HasDefinition() bool
	// IsCStyleStruct reports a plain struct, where unspecified field
	// access defaults to public rather than private.
	IsCStyleStruct() bool
	IsEffectivelyFinal() bool
	IsTrivialAbi() bool

	Fields() []FieldDecl

	SizeBytes() int64
	AlignmentBytes() int64

	CopyConstructor() ir.SpecialMemberFunc
	MoveConstructor() ir.SpecialMemberFunc
	Destructor() ir.SpecialMemberFunc

	// ForceDeclarationOfImplicitMembers asks the semantic layer to
	// materialize implicit special members so their definition status
	// can be queried. Idempotent per record.
	ForceDeclarationOfImplicitMembers()
}

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

// Package ir defines the intermediate representation produced by the
// Importer: a sequence of tagged items describing the subset of a C++
// translation unit's API that can be exposed to a borrow-checked target
// language.
package ir

import "strings"

// DeclId is a stable opaque identifier for a declaration, shared by all
// of its redeclarations within one import.
type DeclId uintptr

// HeaderName is a header path as it appears in the include graph, with a
// single leading "./" trimmed.
type HeaderName string

// NewHeaderName trims a single leading "./" from name.
func NewHeaderName(name string) HeaderName {
	return HeaderName(strings.TrimPrefix(name, "./"))
}

// TargetLabel names the build-system target that owns a declaration.
type TargetLabel string

const (
	// BuiltinTarget is assigned to declarations with no associated file,
	// such as predefined macros and builtin types.
	BuiltinTarget TargetLabel = "builtin"
	// VirtualCompilerResourcesTarget is assigned when the include-stack
	// walk exhausts itself without finding an owning target.
	VirtualCompilerResourcesTarget TargetLabel = "virtual:compiler_resources"
)

// SourceLoc is a source position, produced only and never mutated.
type SourceLoc struct {
	Filename string
	Line     int
	Column   int
}

// Valid reports whether loc carries a real position.
func (loc SourceLoc) Valid() bool {
	return loc.Filename != ""
}

// IdentKind distinguishes the special unqualified-name variants from a
// plain spelled identifier.
type IdentKind int

const (
	IdentPlain IdentKind = iota
	IdentConstructor
	IdentDestructor
)

// Identifier is either a plain name or one of the constructor/destructor
// special-name variants.
type Identifier struct {
	Kind IdentKind
	Name string // only meaningful when Kind == IdentPlain
}

// PlainIdent builds a plain, non-empty identifier.
func PlainIdent(name string) Identifier {
	return Identifier{Kind: IdentPlain, Name: name}
}

// ConstructorIdent is the special constructor name.
func ConstructorIdent() Identifier { return Identifier{Kind: IdentConstructor} }

// DestructorIdent is the special destructor name.
func DestructorIdent() Identifier { return Identifier{Kind: IdentDestructor} }

// String renders the identifier for diagnostics.
func (id Identifier) String() string {
	switch id.Kind {
	case IdentConstructor:
		return "constructor"
	case IdentDestructor:
		return "destructor"
	default:
		return id.Name
	}
}

// LifetimeId is a dense integer naming a lifetime variable. Two
// lifetimes with the same spelled name but different ids are distinct.
type LifetimeId int

// Lifetime binds a lifetime id to the name it was spelled with.
type Lifetime struct {
	Name string
	Id   LifetimeId
}

// AccessSpecifier is a C++ member access level.
type AccessSpecifier int

const (
	AccessPublic AccessSpecifier = iota
	AccessProtected
	AccessPrivate
)

// ReferenceQualification is a method's ref-qualifier.
type ReferenceQualification int

const (
	RefUnqualified ReferenceQualification = iota
	RefLValue
	RefRValue
)

// SpecialMemberDefinition describes how a special member function
// (copy/move constructor, destructor) is defined.
type SpecialMemberDefinition int

const (
	// SpecialMemberTrivial is trivial: it has no effect and every base
	// and member is itself trivial for this special member.
	SpecialMemberTrivial SpecialMemberDefinition = iota
	// SpecialMemberNontrivialMembers is nontrivial only because some
	// base or member has a nontrivial version of this special member;
	// the special member itself is implicitly defined.
	SpecialMemberNontrivialMembers
	// SpecialMemberNontrivialSelf is nontrivial because the record
	// itself declares or requires nontrivial behavior for it (e.g. a
	// user-provided definition, or virtual bases/destructors).
	SpecialMemberNontrivialSelf
	// SpecialMemberDeleted is deleted and cannot be invoked.
	SpecialMemberDeleted
)

// SpecialMemberFunc summarizes one special member (copy ctor, move ctor,
// or destructor) at the granularity a code generator needs.
type SpecialMemberFunc struct {
	Definition SpecialMemberDefinition
	Access     AccessSpecifier
}

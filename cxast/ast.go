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

// Package cxast declares the narrow interfaces the Importer uses to
// reach an external C++ AST collaborator. Production code talks to a
// real Clang AST through the adapter in cxast/libclang; tests talk to
// small in-memory fakes that implement the same interfaces.
package cxast

import "github.com/goplus/cxxbind/ir"

// DeclKind classifies a declaration for the Import Driver's dispatch.
type DeclKind int

const (
	DeclOther DeclKind = iota
	DeclFunction
	DeclFunctionTemplate
	DeclRecord
	DeclClassTemplate
	DeclTypedefName
	DeclNamespace
	DeclTranslationUnit
)

// Decl is the minimal surface every declaration exposes: identity,
// lexical placement, and a kind tag for dispatch.
type Decl interface {
	// Canonical returns the canonical declaration pointer underlying
	// this and every redeclaration of the same entity, used both as a
	// DeclId and as a lookup-cache key.
	Canonical() ir.DeclId
	Kind() DeclKind
	// LexicalParent is the declaration context this decl is textually
	// nested in (a namespace, a record, a function, or the translation
	// unit). Returns nil at the translation-unit level.
	LexicalParent() DeclContext
	SourceLoc() ir.SourceLoc
	// SourceRange is the decl's [begin, end] span, used by the comment
	// harvester and by the driver's sort comparator.
	SourceRange() (begin, end ir.SourceLoc)
	// IsInvalidLocation reports whether this decl's location carries no
	// real position (no associated file), as for builtin declarations.
	IsInvalidLocation() bool
}

// NamedDecl is a Decl that may carry a translatable name.
type NamedDecl interface {
	Decl
	// Name returns the translated identifier and whether one exists.
	// Operators, conversions, literal operators, and deduction guides
	// report ok=false.
	Name() (ir.Identifier, bool)
	// QualifiedName is used for UnsupportedItem diagnostics; returns
	// "unnamed" for anonymous declarations per spec.
	QualifiedName() string
}

// DeclContext is a declaration that can contain other declarations
// (namespace, record, translation unit, function).
type DeclContext interface {
	Decl
	// Decls returns this context's immediate, lexically-ordered child
	// declarations.
	Decls() []Decl
}

// AnyDecl is the union of everything the driver dispatches over.
type AnyDecl interface {
	NamedDecl
}

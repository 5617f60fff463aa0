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

// BuiltinKind enumerates the builtin C++ types the type converter
// recognizes directly (§4.6 step 4), beyond what the Type Dictionary
// pre-empts.
type BuiltinKind int

const (
	BuiltinNone BuiltinKind = iota
	BuiltinBool
	BuiltinFloat
	BuiltinDouble
	BuiltinVoid
	// BuiltinInteger is any signed or unsigned integer; use
	// Type.IntegerWidth/IsUnsigned for the precise width and signedness.
	BuiltinInteger
	// BuiltinOther is every other builtin (e.g. long double, char16_t
	// outside the dictionary): the converter fails on it.
	BuiltinOther
)

// Type is the type-introspection surface the Type Converter needs. All
// queries look through type sugar (elaborated types, qualifiers applied
// via using-declarations, etc.) but never through typedefs: a typedef
// type is reported as such, not unwrapped.
type Type interface {
	// Spelling is the type's canonical, unqualified-of-cv spelling as
	// written by the user (used in error payloads and Simple/CC
	// spellings).
	Spelling() string
	// IsConst reports the type's outer const-qualification. Volatile is
	// not modeled.
	IsConst() bool

	IsPointer() bool
	// Pointee is valid only when IsPointer or IsLValueReference is true.
	Pointee() Type
	IsLValueReference() bool

	// Builtin classifies the type per BuiltinKind, looking through
	// sugar but not typedefs. Returns BuiltinNone for non-builtin types.
	Builtin() BuiltinKind
	// IntegerWidth and IsUnsigned are meaningful only when Builtin() ==
	// BuiltinInteger.
	IntegerWidth() int
	IsUnsigned() bool

	IsTagType() bool
	// IsTypedefType reports whether this type is a use of a typedef
	// name (not unwrapped to its underlying type).
	IsTypedefType() bool
	// TypeDecl is valid only when IsTagType or IsTypedefType is true:
	// it is the record/enum declaration or the typedef declaration this
	// type names.
	TypeDecl() NamedDecl
}

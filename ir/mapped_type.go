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

package ir

// CCType is the C++-side half of a mapped type: the original spelling
// plus the outer const-qualification. Volatile is never represented.
type CCType struct {
	Spelling string
	IsConst  bool
}

// MappedType is the closed tagged variant produced by the type
// converter. Exactly one of the concrete *MappedType types below
// implements it for any given value.
type MappedType interface {
	// CC returns the C++-side spelling/const-qualification shared by
	// every variant.
	CC() CCType
	// WithConst returns a copy of the value with CC().IsConst set.
	WithConst(isConst bool) MappedType
}

// SimpleType is a scalar mapped directly via the type dictionary or a
// builtin arm of the type converter (e.g. "i32" for "int").
type SimpleType struct {
	TargetSpelling string
	Cc             CCType
}

func (t SimpleType) CC() CCType { return t.Cc }

func (t SimpleType) WithConst(isConst bool) MappedType {
	t.Cc.IsConst = isConst
	return t
}

// VoidType is the unit/void mapped type.
type VoidType struct {
	Cc CCType
}

func (t VoidType) CC() CCType { return t.Cc }

func (t VoidType) WithConst(isConst bool) MappedType {
	t.Cc.IsConst = isConst
	return t
}

// PointerType is a raw pointer, with an optional lifetime and a
// nullability flag relevant only to the outermost level of a single
// conversion (recursive pointee conversions never propagate it).
type PointerType struct {
	Pointee  MappedType
	Lifetime *LifetimeId // nil when no lifetime annotation applies
	Nullable bool
	Cc       CCType
}

func (t PointerType) CC() CCType { return t.Cc }

func (t PointerType) WithConst(isConst bool) MappedType {
	t.Cc.IsConst = isConst
	return t
}

// LValueReferenceType is a C++ lvalue reference. Always non-null.
type LValueReferenceType struct {
	Pointee  MappedType
	Lifetime *LifetimeId
	Cc       CCType
}

func (t LValueReferenceType) CC() CCType { return t.Cc }

func (t LValueReferenceType) WithConst(isConst bool) MappedType {
	t.Cc.IsConst = isConst
	return t
}

// WithDeclIdsType names a tag or typedef type by its translated
// identifier and DeclId on both the target and C++ sides; for the
// Importer the two sides are always identical, since renaming into the
// target language's surface syntax is out of scope.
type WithDeclIdsType struct {
	TargetIdent Identifier
	TargetId    DeclId
	CcIdent     Identifier
	CcId        DeclId
	Cc          CCType
}

func (t WithDeclIdsType) CC() CCType { return t.Cc }

func (t WithDeclIdsType) WithConst(isConst bool) MappedType {
	t.Cc.IsConst = isConst
	return t
}

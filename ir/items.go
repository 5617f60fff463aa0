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

// Item is the closed tagged variant over the five kinds of IR item.
// Dispatch on the concrete type with a type switch; new variants are
// never added without a corresponding change to every switch.
type Item interface {
	isItem()
}

// InstanceMethodMetadata describes an instance method's implicit this
// parameter and qualifiers.
type InstanceMethodMetadata struct {
	Reference     ReferenceQualification
	IsConst       bool
	IsVirtual     bool
	IsExplicitCtor bool // only meaningful when the method is a constructor
}

// MemberFuncMetadata identifies the record a method belongs to and, for
// instance methods (as opposed to static member functions), the
// qualifiers of its implicit this parameter.
type MemberFuncMetadata struct {
	RecordId               DeclId
	InstanceMethodMetadata *InstanceMethodMetadata // nil for static members
}

// FuncParam is one parameter of an imported function.
type FuncParam struct {
	Type MappedType
	Name Identifier
}

// Func is an imported function, instance method, constructor, or
// destructor.
type Func struct {
	Name              Identifier
	OwningTarget       TargetLabel
	DocComment         string // empty when absent
	MangledName        string
	ReturnType         MappedType
	Params             []FuncParam
	LifetimeParams     []Lifetime // sorted ascending by Name
	IsInline           bool
	MemberFuncMetadata *MemberFuncMetadata // nil for free functions
	SourceLoc          SourceLoc
}

func (*Func) isItem() {}

// Field is one data member of an imported record.
type Field struct {
	Identifier   Identifier
	DocComment   string
	Type         MappedType
	Access       AccessSpecifier
	OffsetInBits int64
}

// Record is an imported struct/class.
type Record struct {
	Identifier        Identifier
	Id                DeclId
	OwningTarget      TargetLabel
	DocComment        string
	Fields            []Field
	SizeBytes         int64
	AlignmentBytes    int64
	CopyConstructor   SpecialMemberFunc
	MoveConstructor   SpecialMemberFunc
	Destructor        SpecialMemberFunc
	IsTrivialAbi      bool
	IsFinal           bool
	SourceLoc         SourceLoc
}

func (*Record) isItem() {}

// TypeAlias is an imported typedef/using-declaration.
type TypeAlias struct {
	Identifier     Identifier
	Id             DeclId
	OwningTarget   TargetLabel
	UnderlyingType MappedType
	SourceLoc      SourceLoc
}

func (*TypeAlias) isItem() {}

// UnsupportedItem records one error string produced for a declaration
// from the current target.
type UnsupportedItem struct {
	Name      string
	Message   string
	SourceLoc SourceLoc
}

func (*UnsupportedItem) isItem() {}

// Comment is a free-floating comment not attributed to any imported
// declaration's doc comment.
type Comment struct {
	Text      string
	SourceLoc SourceLoc
}

func (*Comment) isItem() {}

// IR is the ordered, deduplicated output of one import.
type IR struct {
	UsedHeaders   []HeaderName
	CurrentTarget TargetLabel
	Items         []Item
}

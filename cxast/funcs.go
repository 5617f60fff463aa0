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

// ParamDecl is one formal parameter of a function.
type ParamDecl interface {
	NamedDecl
	Type() Type
}

// FuncDecl is a function, instance method, constructor, or destructor.
type FuncDecl interface {
	NamedDecl

	IsDeleted() bool
	// IsTemplated reports whether this decl is a FunctionTemplateDecl's
	// templated decl, or an instantiation thereof.
	IsTemplated() bool
	IsInline() bool

	ReturnType() Type
	Params() []ParamDecl

	// IsMethod reports whether this is a non-static member function.
	IsMethod() bool
	// Parent is valid only when IsMethod is true: the enclosing record.
	Parent() RecordDecl
	IsConstMethod() bool
	IsVirtualMethod() bool
	RefQualification() ir.ReferenceQualification
	Access() ir.AccessSpecifier

	IsConstructor() bool
	IsDestructor() bool
	// IsExplicitCtor is valid only when IsConstructor is true.
	IsExplicitCtor() bool

	// ThisType is valid only when IsMethod is true: the (possibly
	// cv-qualified) pointer-to-record type of the implicit this
	// parameter.
	ThisType() Type
}

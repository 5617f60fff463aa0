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

// LifetimeSymbolTable resolves a lifetime id to the name it was spelled
// with.
type LifetimeSymbolTable interface {
	Name(id ir.LifetimeId) (string, bool)
}

// LifetimeStack is a mutable stack of lifetime ids consumed back-to-
// front by the type converter: the outermost pointer/reference position
// in a type consumes first. A LifetimeStack threaded by value (copy on
// branch) keeps consumption scoped to one recursive descent.
type LifetimeStack interface {
	// Empty reports whether the stack has no more ids to consume.
	Empty() bool
	// Pop removes and returns the id at the back of the stack. Calling
	// Pop on an empty stack is a programmer error.
	Pop() ir.LifetimeId
}

// FunctionLifetimes is the per-function lifetime annotation bundle
// returned by the lifetime-analysis collaborator.
type FunctionLifetimes struct {
	// Param holds one lifetime stack per parameter, indexed the same as
	// FuncDecl.Params().
	Param []LifetimeStack
	Return LifetimeStack
	// This is non-nil only for instance methods.
	This LifetimeStack
}

// LifetimeAnalyzer is the lifetime-analysis collaborator: given a
// function, it yields lifetime annotations for every pointer/reference
// position in its signature, or a non-fatal failure meaning no
// annotations are attached.
type LifetimeAnalyzer interface {
	GetLifetimeAnnotations(fn FuncDecl, symbols LifetimeSymbolTable) (FunctionLifetimes, error)
}

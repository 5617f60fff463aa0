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

package importer

import (
	"fmt"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/ir"
)

// typePayloadKey is the auxiliary-payload key under which a
// conversionError's original type spelling is attached, so downstream
// tooling can recover it without parsing the message text.
const typePayloadKey = "type.googleapis.com/cxxbind.UnsupportedTypeSpelling"

// conversionError is returned by convertType on failure. It carries the
// original type spelling as a structured payload alongside the
// human-readable message.
type conversionError struct {
	spelling string
}

func (e *conversionError) Error() string {
	return fmt.Sprintf("unsupported type '%s'", e.spelling)
}

// Payload implements the error payload convention of §6.
func (e *conversionError) Payload() (key, value string) {
	return typePayloadKey, e.spelling
}

// knownTypeDecls is the Importer-owned set of tag/typedef declarations
// that have already produced (or been provisionally given) a DeclId
// resolvable by the type converter, keyed by canonical pointer.
type knownTypeDecls struct {
	idents map[ir.DeclId]ir.Identifier
}

func newKnownTypeDecls() *knownTypeDecls {
	return &knownTypeDecls{idents: make(map[ir.DeclId]ir.Identifier)}
}

func (k *knownTypeDecls) insert(id ir.DeclId, ident ir.Identifier) {
	k.idents[id] = ident
}

func (k *knownTypeDecls) remove(id ir.DeclId) {
	delete(k.idents, id)
}

func (k *knownTypeDecls) lookup(id ir.DeclId) (ir.Identifier, bool) {
	ident, ok := k.idents[id]
	return ident, ok
}

// convertType implements the Type Converter (§4.6): a recursive descent
// over t that consults the Type Dictionary, recognizes pointers and
// lvalue references (consuming one lifetime id per level from the back
// of lifetimeStack), falls back to a fixed set of builtins, and finally
// resolves tag/typedef types against known. lifetimeStack may be nil,
// meaning no lifetime annotations were supplied for this position.
//
// nullable applies only to the type being converted at this call; it is
// never propagated into a recursive pointee conversion, which always
// uses the default nullable=true.
func convertType(t cxast.Type, lifetimeStack cxast.LifetimeStack, nullable bool, known *knownTypeDecls) (ir.MappedType, error) {
	mapped, err := convertTypeUnqualified(t, lifetimeStack, nullable, known)
	if err != nil {
		return nil, err
	}
	return mapped.WithConst(t.IsConst()), nil
}

func convertTypeUnqualified(t cxast.Type, lifetimeStack cxast.LifetimeStack, nullable bool, known *knownTypeDecls) (ir.MappedType, error) {
	spelling := t.Spelling()

	// Arm 1: Type Dictionary pre-emption.
	if mapped, ok := lookupTypeDictionary(spelling); ok {
		return ir.SimpleType{TargetSpelling: mapped, Cc: ir.CCType{Spelling: spelling}}, nil
	}

	// Arm 2: pointer.
	if t.IsPointer() {
		lifetime := consumeLifetime(lifetimeStack)
		pointee, err := convertType(t.Pointee(), lifetimeStack, true, known)
		if err != nil {
			return nil, err
		}
		return ir.PointerType{Pointee: pointee, Lifetime: lifetime, Nullable: nullable}, nil
	}

	// Arm 3: lvalue reference.
	if t.IsLValueReference() {
		lifetime := consumeLifetime(lifetimeStack)
		pointee, err := convertType(t.Pointee(), lifetimeStack, true, known)
		if err != nil {
			return nil, err
		}
		return ir.LValueReferenceType{Pointee: pointee, Lifetime: lifetime}, nil
	}

	// Arm 4: fixed builtins.
	switch t.Builtin() {
	case cxast.BuiltinBool:
		return ir.SimpleType{TargetSpelling: "bool", Cc: ir.CCType{Spelling: "bool"}}, nil
	case cxast.BuiltinFloat:
		return ir.SimpleType{TargetSpelling: "f32", Cc: ir.CCType{Spelling: "float"}}, nil
	case cxast.BuiltinDouble:
		return ir.SimpleType{TargetSpelling: "f64", Cc: ir.CCType{Spelling: "double"}}, nil
	case cxast.BuiltinVoid:
		return ir.VoidType{}, nil
	case cxast.BuiltinInteger:
		if mapped, ok := integerSpelling(t.IntegerWidth(), t.IsUnsigned()); ok {
			return ir.SimpleType{TargetSpelling: mapped, Cc: ir.CCType{Spelling: spelling}}, nil
		}
		return nil, &conversionError{spelling: spelling}
	case cxast.BuiltinOther:
		return nil, &conversionError{spelling: spelling}
	}

	// Arm 5: tag type already known.
	if t.IsTagType() {
		decl := t.TypeDecl()
		if ident, ok := known.lookup(decl.Canonical()); ok {
			return ir.WithDeclIdsType{
				TargetIdent: ident, TargetId: decl.Canonical(),
				CcIdent: ident, CcId: decl.Canonical(),
			}, nil
		}
		return nil, &conversionError{spelling: spelling}
	}

	// Arm 6: typedef type already known.
	if t.IsTypedefType() {
		decl := t.TypeDecl()
		if ident, ok := known.lookup(decl.Canonical()); ok {
			return ir.WithDeclIdsType{
				TargetIdent: ident, TargetId: decl.Canonical(),
				CcIdent: ident, CcId: decl.Canonical(),
			}, nil
		}
		return nil, &conversionError{spelling: spelling}
	}

	// Arm 7: nothing matched.
	return nil, &conversionError{spelling: spelling}
}

// integerSpelling maps a signed/unsigned integer's bit width to its
// mapped scalar spelling; only the four standard widths are supported.
func integerSpelling(width int, unsigned bool) (string, bool) {
	switch width {
	case 8, 16, 32, 64:
	default:
		return "", false
	}
	if unsigned {
		return fmt.Sprintf("u%d", width), true
	}
	return fmt.Sprintf("i%d", width), true
}

// consumeLifetime pops one lifetime id from the back of stack. A nil
// stack means no lifetime annotations were supplied for this position,
// which is not an error: the resulting pointer/reference simply carries
// no lifetime. A non-nil, empty stack is the programmer-error case
// described in §4.6's lifetime-stack invariant and is a fatal invariant
// violation: it halts the import rather than producing a per-decl error.
func consumeLifetime(stack cxast.LifetimeStack) *ir.LifetimeId {
	if stack == nil {
		return nil
	}
	if stack.Empty() {
		panic("importer: lifetime stack exhausted before a pointer/reference position was converted")
	}
	id := stack.Pop()
	return &id
}

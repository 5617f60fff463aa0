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
	"github.com/goplus/lib/c/clang"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/internal/clangutil"
)

// typeAdapter wraps a clang.Type. cv-qualification, pointer/reference
// sugar and builtin classification are all queried directly against
// the cursor's CXType; typedef types are deliberately left un-desugared
// per cxast.Type's contract.
type typeAdapter struct {
	t  clang.Type
	tu *TU
}

func wrapType(t clang.Type, tu *TU) *typeAdapter {
	return &typeAdapter{t: t, tu: tu}
}

func (t *typeAdapter) Spelling() string {
	return clangutil.Str(clangutil.GetTypeSpelling(t.t))
}

func (t *typeAdapter) IsConst() bool {
	return clangutil.IsConstQualifiedType(t.t) != 0
}

func (t *typeAdapter) IsPointer() bool {
	return t.t.Kind == clang.TypePointer
}

func (t *typeAdapter) Pointee() cxast.Type {
	return wrapType(clangutil.GetPointeeType(t.t), t.tu)
}

func (t *typeAdapter) IsLValueReference() bool {
	return t.t.Kind == clang.TypeLValueReference
}

func (t *typeAdapter) Builtin() cxast.BuiltinKind {
	switch t.t.Kind {
	case clang.TypeBool:
		return cxast.BuiltinBool
	case clang.TypeFloat:
		return cxast.BuiltinFloat
	case clang.TypeDouble:
		return cxast.BuiltinDouble
	case clang.TypeVoid:
		return cxast.BuiltinVoid
	case clang.TypeCharS, clang.TypeSChar, clang.TypeShort, clang.TypeInt, clang.TypeLong, clang.TypeLongLong,
		clang.TypeCharU, clang.TypeUChar, clang.TypeUShort, clang.TypeUInt, clang.TypeULong, clang.TypeULongLong:
		return cxast.BuiltinInteger
	}
	if t.t.Kind == clang.TypeInvalid {
		return cxast.BuiltinNone
	}
	if !t.IsPointer() && !t.IsLValueReference() && !t.IsTagType() && !t.IsTypedefType() {
		return cxast.BuiltinOther
	}
	return cxast.BuiltinNone
}

func (t *typeAdapter) IntegerWidth() int {
	bits := clangutil.TypeGetSizeOf(t.t) * 8
	switch bits {
	case 8, 16, 32, 64:
		return int(bits)
	}
	return 0
}

func (t *typeAdapter) IsUnsigned() bool {
	switch t.t.Kind {
	case clang.TypeCharU, clang.TypeUChar, clang.TypeUShort, clang.TypeUInt, clang.TypeULong, clang.TypeULongLong:
		return true
	}
	return false
}

func (t *typeAdapter) IsTagType() bool {
	switch t.t.Kind {
	case clang.TypeRecord, clang.TypeEnum:
		return true
	}
	return false
}

func (t *typeAdapter) IsTypedefType() bool {
	return t.t.Kind == clang.TypeTypedef
}

func (t *typeAdapter) TypeDecl() cxast.NamedDecl {
	cur := clangutil.GetTypeDeclaration(t.t)
	if cur.IsNull() == 1 {
		return nil
	}
	return wrapAny(cur, t.tu).(cxast.NamedDecl)
}

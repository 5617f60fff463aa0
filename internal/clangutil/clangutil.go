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

// Package clangutil holds the low-level libclang plumbing shared by
// cxast/libclang: spinning up a translation unit, walking cursors, and
// the handful of //go:linkname escapes to raw libclang C symbols that
// github.com/goplus/lib/c/clang does not wrap.
package clangutil

import (
	"errors"
	"os/exec"
	"unsafe"

	"github.com/goplus/lib/c"
	"github.com/goplus/lib/c/clang"
)

const (
	LLGoFiles   = "$(llvm-config --cflags): _wrap/wrap.cpp"
	LLGoPackage = "link: -L$(llvm-config --libdir) -lclang; -lclang"
)

// Config configures one call to CreateTranslationUnit.
type Config struct {
	File  string
	Temp  bool
	Args  []string
	IsCpp bool
	Index *clang.Index
}

type Visitor func(cursor, parent clang.Cursor) clang.ChildVisitResult

type InclusionVisitor func(includedFile clang.File, inclusions []clang.SourceLocation)

const tempFileName = "temp.h"

// CreateTranslationUnit invokes clang with -x c or -x c++ plus
// config.Args and parses config.File (or, when config.Temp is set,
// config.File's contents as an in-memory file named temp.h).
func CreateTranslationUnit(config *Config) (*clang.Index, *clang.TranslationUnit, error) {
	path, err := exec.LookPath("clang")
	if err != nil {
		return nil, nil, err
	}

	allArgs := append(append([]string{path}, defaultArgs(config.IsCpp)...), config.Args...)
	cArgs := make([]*c.Char, len(allArgs))
	for i, arg := range allArgs {
		cArgs[i] = c.AllocaCStr(arg)
	}

	var index *clang.Index
	if config.Index != nil {
		index = config.Index
	} else {
		index = clang.CreateIndex(0, 0)
	}

	var unit *clang.TranslationUnit
	var code ErrorCode
	if config.Temp {
		content := c.AllocaCStr(config.File)
		unsaved := &clang.UnsavedFile{
			Filename: c.Str(tempFileName),
			Contents: content,
			Length:   c.Ulong(c.Strlen(content)),
		}
		code = ParseTranslationUnit2FullArgv(index, unsaved.Filename,
			unsafe.SliceData(cArgs), c.Int(len(cArgs)),
			unsaved, 1, clang.DetailedPreprocessingRecord, &unit)
	} else {
		cFile := c.AllocaCStr(config.File)
		code = ParseTranslationUnit2FullArgv(index, cFile,
			unsafe.SliceData(cArgs), c.Int(len(cArgs)),
			nil, 0, clang.DetailedPreprocessingRecord, &unit)
	}

	if code != Error_Success || unit == nil {
		return nil, nil, errors.New("clangutil: failed to parse translation unit")
	}
	return index, unit, nil
}

// GetLocation decomposes loc into its spelling file/line/column/offset.
func GetLocation(loc clang.SourceLocation) (file clang.File, line, column, offset c.Uint) {
	loc.SpellingLocation(&file, &line, &column, &offset)
	return
}

// BuildScopingParts walks semantic parents from cursor up to (but not
// including) the translation unit, returning the outer-to-inner
// sequence of spellings.
func BuildScopingParts(cursor clang.Cursor) []string {
	var parts []string
	for cursor.IsNull() != 1 && cursor.Kind != clang.CursorTranslationUnit {
		name := cursor.String()
		qualified := c.GoString(name.CStr())
		parts = append([]string{qualified}, parts...)
		cursor = cursor.SemanticParent()
		name.Dispose()
	}
	return parts
}

// VisitChildren adapts fn to clang_visitChildren's C callback ABI.
func VisitChildren(cursor clang.Cursor, fn Visitor) c.Uint {
	return clang.VisitChildren(cursor, func(cursor, parent clang.Cursor, clientData unsafe.Pointer) clang.ChildVisitResult {
		cfn := *(*Visitor)(clientData)
		return cfn(cursor, parent)
	}, unsafe.Pointer(&fn))
}

// GetInclusions adapts visitor to clang_getInclusions's C callback ABI.
func GetInclusions(unit *clang.TranslationUnit, visitor InclusionVisitor) {
	clang.GetInclusions(unit, func(inced clang.File, incin *clang.SourceLocation, incilen c.Uint, data c.Pointer) {
		ics := unsafe.Slice(incin, incilen)
		cfn := *(*InclusionVisitor)(data)
		cfn(inced, ics)
	}, unsafe.Pointer(&visitor))
}

// Str converts a CXString to a Go string, disposing it.
func Str(s clang.String) string {
	defer s.Dispose()
	if s.CStr() == nil {
		return ""
	}
	return c.GoString(s.CStr())
}

func defaultArgs(isCpp bool) []string {
	if isCpp {
		return []string{"-x", "c++"}
	}
	return []string{"-x", "c"}
}

type ErrorCode c.Int

const (
	Error_Success          ErrorCode = 0
	Error_Failure          ErrorCode = 1
	Error_Crashed          ErrorCode = 2
	Error_InvalidArguments ErrorCode = 3
	Error_ASTReadError     ErrorCode = 4
)

//go:linkname ParseTranslationUnit2FullArgv C.clang_parseTranslationUnit2FullArgv
func ParseTranslationUnit2FullArgv(index *clang.Index, sourceFilename *c.Char, commandLineArgs **c.Char, numCommandLineArgs c.Int,
	unsavedFiles *clang.UnsavedFile, numUnsavedFiles c.Uint, options c.Uint, outTU **clang.TranslationUnit) ErrorCode

// The predicates and queries below are all real public libclang C API
// entry points that github.com/goplus/lib/c/clang does not currently
// wrap with a Go method, the same gap _xtool/internal/clang/libclang.go
// plugs for clang_isCursorDefinition's sibling. Binding straight to the
// C symbol sidesteps guessing at a wrapper method name that may not
// exist.

//go:linkname GetCursorType C.clang_getCursorType
func GetCursorType(cur clang.Cursor) clang.Type

//go:linkname GetCursorResultType C.clang_getCursorResultType
func GetCursorResultType(cur clang.Cursor) clang.Type

//go:linkname CursorGetNumArguments C.clang_Cursor_getNumArguments
func CursorGetNumArguments(cur clang.Cursor) c.Int

//go:linkname CursorGetArgument C.clang_Cursor_getArgument
func CursorGetArgument(cur clang.Cursor, i c.Uint) clang.Cursor

//go:linkname IsConstQualifiedType C.clang_isConstQualifiedType
func IsConstQualifiedType(t clang.Type) c.Uint

//go:linkname GetPointeeType C.clang_getPointeeType
func GetPointeeType(t clang.Type) clang.Type

//go:linkname GetCanonicalType C.clang_getCanonicalType
func GetCanonicalType(t clang.Type) clang.Type

//go:linkname TypeGetCXXRefQualifier C.clang_Type_getCXXRefQualifier
func TypeGetCXXRefQualifier(t clang.Type) c.Int

//go:linkname GetTypedefDeclUnderlyingType C.clang_getTypedefDeclUnderlyingType
func GetTypedefDeclUnderlyingType(cur clang.Cursor) clang.Type

//go:linkname TypeGetSizeOf C.clang_Type_getSizeOf
func TypeGetSizeOf(t clang.Type) c.LongLong

//go:linkname TypeGetAlignOf C.clang_Type_getAlignOf
func TypeGetAlignOf(t clang.Type) c.LongLong

//go:linkname CursorGetOffsetOfField C.clang_Cursor_getOffsetOfField
func CursorGetOffsetOfField(cur clang.Cursor) c.LongLong

//go:linkname CXXMethodIsConst C.clang_CXXMethod_isConst
func CXXMethodIsConst(cur clang.Cursor) c.Uint

//go:linkname CXXMethodIsVirtual C.clang_CXXMethod_isVirtual
func CXXMethodIsVirtual(cur clang.Cursor) c.Uint

//go:linkname CXXMethodIsStatic C.clang_CXXMethod_isStatic
func CXXMethodIsStatic(cur clang.Cursor) c.Uint

//go:linkname CXXConstructorIsDefaultConstructor C.clang_CXXConstructor_isDefaultConstructor
func CXXConstructorIsDefaultConstructor(cur clang.Cursor) c.Uint

//go:linkname CXXConstructorIsCopyConstructor C.clang_CXXConstructor_isCopyConstructor
func CXXConstructorIsCopyConstructor(cur clang.Cursor) c.Uint

//go:linkname CXXConstructorIsMoveConstructor C.clang_CXXConstructor_isMoveConstructor
func CXXConstructorIsMoveConstructor(cur clang.Cursor) c.Uint

//go:linkname CXXMethodIsExplicit C.clang_CXXMethod_isExplicit
func CXXMethodIsExplicit(cur clang.Cursor) c.Uint

//go:linkname CXXMethodIsDeleted C.clang_CXXMethod_isDeleted
func CXXMethodIsDeleted(cur clang.Cursor) c.Uint

//go:linkname CXXMethodIsDefaulted C.clang_CXXMethod_isDefaulted
func CXXMethodIsDefaulted(cur clang.Cursor) c.Uint

//go:linkname CXXRecordIsAbstract C.clang_CXXRecord_isAbstract
func CXXRecordIsAbstract(cur clang.Cursor) c.Uint

//go:linkname CursorIsFunctionInlined C.clang_Cursor_isFunctionInlined
func CursorIsFunctionInlined(cur clang.Cursor) c.Uint

//go:linkname CursorGetCXXAccessSpecifier C.clang_getCXXAccessSpecifier
func CursorGetCXXAccessSpecifier(cur clang.Cursor) c.Int

//go:linkname CursorIsAnonymous C.clang_Cursor_isAnonymous
func CursorIsAnonymous(cur clang.Cursor) c.Uint

//go:linkname IsCursorDefinition C.clang_isCursorDefinition
func IsCursorDefinition(cur clang.Cursor) c.Uint

//go:linkname CursorGetMangling C.clang_Cursor_getMangling
func CursorGetMangling(cur clang.Cursor) clang.String

//go:linkname CursorGetRawCommentText C.clang_Cursor_getRawCommentText
func CursorGetRawCommentText(cur clang.Cursor) clang.String

//go:linkname CursorGetCommentRange C.clang_Cursor_getCommentRange
func CursorGetCommentRange(cur clang.Cursor) clang.SourceRange

//go:linkname GetCursorExtent C.clang_getCursorExtent
func GetCursorExtent(cur clang.Cursor) clang.SourceRange

//go:linkname GetRangeStart C.clang_getRangeStart
func GetRangeStart(r clang.SourceRange) clang.SourceLocation

//go:linkname GetRangeEnd C.clang_getRangeEnd
func GetRangeEnd(r clang.SourceRange) clang.SourceLocation

//go:linkname EqualLocations C.clang_equalLocations
func EqualLocations(a, b clang.SourceLocation) c.Uint

//go:linkname GetCursorUSR C.clang_getCursorUSR
func GetCursorUSR(cur clang.Cursor) clang.String

//go:linkname GetCanonicalCursor C.clang_getCanonicalCursor
func GetCanonicalCursor(cur clang.Cursor) clang.Cursor

//go:linkname GetTypeSpelling C.clang_getTypeSpelling
func GetTypeSpelling(t clang.Type) clang.String

//go:linkname GetTypeDeclaration C.clang_getTypeDeclaration
func GetTypeDeclaration(t clang.Type) clang.Cursor

//go:linkname GetSpecializedCursorTemplate C.clang_getSpecializedCursorTemplate
func GetSpecializedCursorTemplate(cur clang.Cursor) clang.Cursor

//go:linkname getFile C.clang_getFile
func getFile(tu *clang.TranslationUnit, fileName *c.Char) clang.File

//go:linkname getLocation C.clang_getLocation
func getLocation(tu *clang.TranslationUnit, file clang.File, line, column c.Uint) clang.SourceLocation

//go:linkname locationIsInSystemHeader C.clang_Location_isInSystemHeader
func locationIsInSystemHeader(loc clang.SourceLocation) c.Uint

// IsSystemHeader reports whether fileName, as known to tu, is a system
// header. Used by the Target Resolver's include-stack walk to stop
// climbing once it reaches one (clang_Location_isInSystemHeader needs a
// CXSourceLocation, so this resolves fileName to its CXFile and takes
// the location of line 1, column 1, which is in the same file and thus
// carries the same system-header-ness as any other location in it).
func IsSystemHeader(tu *clang.TranslationUnit, fileName string) bool {
	file := getFile(tu, c.AllocaCStr(fileName))
	loc := getLocation(tu, file, 1, 1)
	return locationIsInSystemHeader(loc) != 0
}

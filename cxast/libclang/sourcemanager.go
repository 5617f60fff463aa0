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
	"github.com/goplus/cxxbind/ir"
)

// sourceManagerAdapter implements cxast.SourceManager. It approximates
// clang::SourceManager::isBeforeInTranslationUnit, which the stable C
// API does not expose, with (filename, line, column) ordering: correct
// within one header. Locations in two different headers are ordered by
// filename, not by their position in the translation unit.
type sourceManagerAdapter struct {
	tu *TU
}

func (s *sourceManagerAdapter) IsBeforeInTranslationUnit(a, b ir.SourceLoc) bool {
	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// OwningTargetOf walks GetInclusions' include graph from loc.Filename
// upward until it finds an entry in headerToTarget, mirroring the
// Target Resolver's include-stack walk (§4.4): on a miss, it steps to
// the including file and keeps going unless that next location is
// invalid or in a system header.
func (s *sourceManagerAdapter) OwningTargetOf(loc ir.SourceLoc, headerToTarget map[ir.HeaderName]ir.TargetLabel) ir.TargetLabel {
	if loc.Filename == "" {
		return ir.BuiltinTarget
	}
	seen := map[string]bool{}
	current := loc.Filename
	for current != "" && !seen[current] {
		seen[current] = true
		if target, ok := headerToTarget[ir.NewHeaderName(current)]; ok {
			return target
		}
		next := s.includerOf(current)
		if next == "" || clangutil.IsSystemHeader(s.tu.unit, next) {
			break
		}
		current = next
	}
	return ir.VirtualCompilerResourcesTarget
}

// includerOf returns the header that #included file, or "" if file is
// an entry file with no includer in this translation unit.
func (s *sourceManagerAdapter) includerOf(file string) string {
	includer := ""
	clangutil.GetInclusions(s.tu.unit, func(inced clang.File, inclusions []clang.SourceLocation) {
		if includer != "" || clangutil.Str(inced.FileName()) != file {
			return
		}
		if len(inclusions) == 0 {
			return
		}
		includer = sourceLocOf(inclusions[0]).Filename
	})
	return includer
}

func (s *sourceManagerAdapter) RawCommentsIn(header ir.HeaderName) []cxast.RawComment {
	var comments []cxast.RawComment
	s.walkFile(string(header), func(cur clang.Cursor) {
		text := clangutil.Str(clangutil.CursorGetRawCommentText(cur))
		if text == "" {
			return
		}
		r := clangutil.CursorGetCommentRange(cur)
		comments = append(comments, cxast.RawComment{
			Text:  text,
			Begin: sourceLocOf(clangutil.GetRangeStart(r)),
			End:   sourceLocOf(clangutil.GetRangeEnd(r)),
		})
	})
	return comments
}

func (s *sourceManagerAdapter) DocCommentFor(decl cxast.Decl) (cxast.RawComment, bool) {
	var adapter *declAdapter
	if named, ok := decl.(cxast.NamedDecl); ok {
		adapter, _ = unwrapDecl(named)
	}
	if adapter == nil {
		if d, ok := decl.(*declAdapter); ok {
			adapter = d
		} else {
			return cxast.RawComment{}, false
		}
	}
	text := clangutil.Str(clangutil.CursorGetRawCommentText(adapter.cursor))
	if text == "" {
		return cxast.RawComment{}, false
	}
	r := clangutil.CursorGetCommentRange(adapter.cursor)
	return cxast.RawComment{
		Text:  text,
		Begin: sourceLocOf(clangutil.GetRangeStart(r)),
		End:   sourceLocOf(clangutil.GetRangeEnd(r)),
	}, true
}

// walkFile visits every cursor transitively under the translation unit
// whose own location resolves to file, calling visit for each.
func (s *sourceManagerAdapter) walkFile(file string, visit func(clang.Cursor)) {
	var walk func(cur clang.Cursor)
	walk = func(cur clang.Cursor) {
		clangutil.VisitChildren(cur, func(child, _ clang.Cursor) clang.ChildVisitResult {
			loc := sourceLocOf(child.Location())
			if loc.Filename == file {
				visit(child)
			}
			walk(child)
			return clang.ChildVisit_Continue
		})
	}
	walk(s.tu.unit.Cursor())
}

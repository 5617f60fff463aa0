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
	"regexp"
	"sort"
	"strings"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/ir"
)

// importedDeclRange is what the comment harvester needs about one decl
// that produced an IR item: its source range, used to subtract every
// comment lexically inside it, and the decl itself, whose doc comment
// is subtracted separately since a doc comment written before the
// decl's begin-location would otherwise survive the range subtraction.
type importedDeclRange struct {
	decl  cxast.Decl
	begin ir.SourceLoc
	end   ir.SourceLoc
}

// harvestFreeComments implements the Comment Harvester (§4.5): gather
// every raw comment in every entry header in source order, then
// subtract the doc comments and source ranges of every decl that
// produced an item, yielding the residual as Comment items.
func harvestFreeComments(sm cxast.SourceManager, entryHeaders []ir.HeaderName, imported []importedDeclRange) []ir.Item {
	var comments []cxast.RawComment
	for _, h := range entryHeaders {
		comments = append(comments, sm.RawCommentsIn(h)...)
	}
	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		if a.Invalid != b.Invalid {
			return b.Invalid // invalid sorts last
		}
		return sm.IsBeforeInTranslationUnit(a.Begin, b.Begin)
	})

	removed := make([]bool, len(comments))
	removeAt := func(loc ir.SourceLoc) {
		for i, c := range comments {
			if removed[i] || c.Invalid {
				continue
			}
			if c.Begin == loc {
				removed[i] = true
			}
		}
	}
	removeRange := func(begin, end ir.SourceLoc) {
		for i, c := range comments {
			if removed[i] || c.Invalid {
				continue
			}
			if !sm.IsBeforeInTranslationUnit(c.Begin, begin) &&
				!sm.IsBeforeInTranslationUnit(end, c.Begin) {
				removed[i] = true
			}
		}
	}

	for _, d := range imported {
		if doc, ok := sm.DocCommentFor(d.decl); ok {
			removeAt(doc.Begin)
		}
		removeRange(d.begin, d.end)
	}

	var out []ir.Item
	for i, c := range comments {
		if removed[i] {
			continue
		}
		out = append(out, &ir.Comment{
			Text:      cleanComment(c.Text),
			SourceLoc: translateSourceLoc(c.Begin),
		})
	}
	return out
}

// nolintLine matches a NOLINT/NOLINTNEXTLINE/NOLINTBEGIN/NOLINTEND
// marker, optionally followed by a parenthesized check-name list, on a
// comment line of its own.
var nolintLine = regexp.MustCompile(`^\s*//\s*NOLINT(NEXTLINE|BEGIN|END)?(\([^)]*\))?\s*$`)

// cleanComment strips NOLINT-family lines from a raw doc or free
// comment's text before it is attached to an IR item, matching the
// behavior linters expect from hand-written documentation.
func cleanComment(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if nolintLine.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

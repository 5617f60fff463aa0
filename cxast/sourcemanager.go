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

// RawComment is one comment as lexed from source, independent of any
// declaration it might document.
type RawComment struct {
	Text      string
	Begin     ir.SourceLoc
	End       ir.SourceLoc
	Invalid   bool // true when Begin/End carry no real position
}

// SourceManager is the single collaborator backing the Source-Location
// Translator, the Target Resolver's include-stack walk, and the Comment
// Harvester: in a real Clang AST all three are facets of
// clang::SourceManager / clang::ASTContext.
type SourceManager interface {
	// IsBeforeInTranslationUnit orders two locations for the driver's
	// sort comparator and the comment harvester's ordered map.
	IsBeforeInTranslationUnit(a, b ir.SourceLoc) bool

	// OwningTargetOf walks the include stack from loc upward, consulting
	// headerToTarget, and returns the resolved target. Returns
	// ir.BuiltinTarget when loc has no associated file, and
	// ir.VirtualCompilerResourcesTarget when the walk exhausts itself
	// without a hit.
	OwningTargetOf(loc ir.SourceLoc, headerToTarget map[ir.HeaderName]ir.TargetLabel) ir.TargetLabel

	// RawCommentsIn returns every raw comment lexed from header, in
	// source order.
	RawCommentsIn(header ir.HeaderName) []RawComment
	// DocCommentFor returns the raw comment Clang would attach to decl
	// as its documentation, if any.
	DocCommentFor(decl Decl) (RawComment, bool)
}

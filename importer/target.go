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
	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/ir"
)

// owningTargetOf resolves decl's owning build-system target by walking
// the include stack from its source location upward. The walk itself
// (file-id lookup, system-header short-circuit, include-location
// stepping) is delegated to the source-manager collaborator, since in a
// real Clang AST it requires direct access to the FileManager; this
// function only supplies the starting location and the target map.
func owningTargetOf(sm cxast.SourceManager, decl cxast.Decl, headerToTarget map[ir.HeaderName]ir.TargetLabel) ir.TargetLabel {
	return sm.OwningTargetOf(decl.SourceLoc(), headerToTarget)
}

// belongsToCurrentTarget reports whether decl's resolved target equals
// currentTarget.
func belongsToCurrentTarget(sm cxast.SourceManager, decl cxast.Decl, headerToTarget map[ir.HeaderName]ir.TargetLabel, currentTarget ir.TargetLabel) bool {
	return owningTargetOf(sm, decl, headerToTarget) == currentTarget
}

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

import "github.com/goplus/cxxbind/ir"

// translateSourceLoc normalizes a SourceLoc as produced by the AST
// collaborator: filenames come already split into spelling line/column
// by cxast, so this step only trims a single leading "./".
func translateSourceLoc(loc ir.SourceLoc) ir.SourceLoc {
	if loc.Filename == "" {
		return loc
	}
	loc.Filename = string(ir.NewHeaderName(loc.Filename))
	return loc
}

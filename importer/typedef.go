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

// importTypedefName implements §4.7.3.
func importTypedefName(ctx *importContext, td cxast.TypedefDecl) ir.LookupResult {
	if !belongsToCurrentTarget(ctx.cfg.SourceManager, td, ctx.cfg.HeaderToTarget, ctx.cfg.CurrentTarget) {
		return ir.LookupResult{}
	}
	if isInsideFunction(td) {
		return ir.LookupResult{}
	}
	if _, ok := td.LexicalParent().(cxast.RecordDecl); ok {
		return ir.LookupResult{Errors: []string{"Typedefs nested in classes are not supported yet"}}
	}

	// The typedef's own spelling, not its underlying type's spelling,
	// pre-empts via the Type Dictionary: "using MyInt = int" still
	// aliases through, "typedef int int32_t" is pre-empted.
	if _, ok := lookupTypeDictionary(td.Spelling()); ok {
		return ir.LookupResult{}
	}

	underlying, err := convertType(td.UnderlyingType(), nil, true, ctx.known)
	if err != nil {
		return ir.LookupResult{Errors: []string{err.Error()}}
	}

	// A TypedefNameDecl can never be anonymous; an absent identifier
	// here is a programmer invariant violation (spec §7 channel 3), not
	// a legitimately unnameable decl kind like an operator overload.
	name, ok := translatedName(td)
	if !ok {
		panic(fmt.Sprintf("importer: typedef %s has no translated identifier", td.QualifiedName()))
	}

	id := td.Canonical()
	ctx.known.insert(id, name)

	begin, _ := td.SourceRange()
	return ir.LookupResult{Item: &ir.TypeAlias{
		Identifier:     name,
		Id:             id,
		OwningTarget:   owningTargetOf(ctx.cfg.SourceManager, td, ctx.cfg.HeaderToTarget),
		UnderlyingType: underlying,
		SourceLoc:      translateSourceLoc(begin),
	}}
}

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
	"sort"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/ir"
)

// importFunction implements §4.7.1.
func importFunction(ctx *importContext, fn cxast.FuncDecl) ir.LookupResult {
	if !belongsToCurrentTarget(ctx.cfg.SourceManager, fn, ctx.cfg.HeaderToTarget, ctx.cfg.CurrentTarget) {
		return ir.LookupResult{}
	}
	if fn.IsDeleted() || fn.IsTemplated() {
		return ir.LookupResult{}
	}

	lifetimes, hasLifetimes := fetchFunctionLifetimes(ctx, fn)

	var errs []string
	lifetimeIds := make(map[ir.LifetimeId]struct{})
	var params []ir.FuncParam
	var memberMeta *ir.MemberFuncMetadata

	if fn.IsMethod() {
		parent := fn.Parent()
		if _, ok := ctx.known.lookup(parent.Canonical()); !ok {
			return ir.LookupResult{Errors: []string{"Couldn't import the parent"}}
		}

		var thisStack cxast.LifetimeStack
		if hasLifetimes {
			thisStack = lifetimes.This
		}
		thisType, err := convertType(fn.ThisType(), thisStack, false, ctx.known)
		if err != nil {
			panic(fmt.Sprintf("importer: implicit this parameter of %s failed to convert: %v", fn.QualifiedName(), err))
		}
		collectLifetimeIds(thisType, lifetimeIds)
		params = append(params, ir.FuncParam{Type: thisType, Name: ir.PlainIdent("__this")})

		memberMeta = &ir.MemberFuncMetadata{
			RecordId: parent.Canonical(),
			InstanceMethodMetadata: &ir.InstanceMethodMetadata{
				Reference:      fn.RefQualification(),
				IsConst:        fn.IsConstMethod(),
				IsVirtual:      fn.IsVirtualMethod(),
				IsExplicitCtor: fn.IsConstructor() && fn.IsExplicitCtor(),
			},
		}
	}

	for i, p := range fn.Params() {
		var stack cxast.LifetimeStack
		if hasLifetimes {
			stack = lifetimes.Param[i]
		}
		mapped, err := convertType(p.Type(), stack, true, ctx.known)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Parameter type '%s' is not supported", p.Type().Spelling()))
			continue
		}
		if nonTrivialAbiByValue(ctx, mapped) {
			errs = append(errs, fmt.Sprintf("Non-trivial_abi type '%s' is not supported by value as a parameter", p.Type().Spelling()))
		}
		collectLifetimeIds(mapped, lifetimeIds)
		params = append(params, ir.FuncParam{Type: mapped, Name: translatedParamName(p, i)})
	}

	var returnType ir.MappedType
	{
		var stack cxast.LifetimeStack
		if hasLifetimes {
			stack = lifetimes.Return
		}
		mapped, err := convertType(fn.ReturnType(), stack, true, ctx.known)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Return type '%s' is not supported", fn.ReturnType().Spelling()))
		} else {
			if nonTrivialAbiByValue(ctx, mapped) {
				errs = append(errs, fmt.Sprintf("Non-trivial_abi type '%s' is not supported by value as a return type", fn.ReturnType().Spelling()))
			}
			collectLifetimeIds(mapped, lifetimeIds)
			returnType = mapped
		}
	}

	if fn.IsMethod() && fn.Access() != ir.AccessPublic {
		return ir.LookupResult{}
	}

	if len(errs) > 0 {
		return ir.LookupResult{Errors: errs}
	}

	name, ok := translatedName(fn)
	if !ok {
		return ir.LookupResult{}
	}

	begin, _ := fn.SourceRange()
	return ir.LookupResult{Item: &ir.Func{
		Name:               name,
		OwningTarget:       owningTargetOf(ctx.cfg.SourceManager, fn, ctx.cfg.HeaderToTarget),
		DocComment:         docCommentFor(ctx.cfg.SourceManager, fn),
		MangledName:        mangledName(ctx.cfg.Mangler, fn),
		ReturnType:         returnType,
		Params:             params,
		LifetimeParams:     sortedLifetimeParams(ctx, lifetimeIds),
		IsInline:           fn.IsInline(),
		MemberFuncMetadata: memberMeta,
		SourceLoc:          translateSourceLoc(begin),
	}}
}

func fetchFunctionLifetimes(ctx *importContext, fn cxast.FuncDecl) (cxast.FunctionLifetimes, bool) {
	if ctx.cfg.Lifetimes == nil {
		return cxast.FunctionLifetimes{}, false
	}
	lt, err := ctx.cfg.Lifetimes.GetLifetimeAnnotations(fn, ctx.cfg.LifetimeSymbols)
	if err != nil {
		return cxast.FunctionLifetimes{}, false
	}
	if len(lt.Param) != len(fn.Params()) {
		panic(fmt.Sprintf("importer: lifetime annotations for %s have %d param entries, want %d", fn.QualifiedName(), len(lt.Param), len(fn.Params())))
	}
	return lt, true
}

// nonTrivialAbiByValue reports whether mapped names a record, passed by
// value (not through a pointer/reference), whose value representation
// cannot be passed in registers.
func nonTrivialAbiByValue(ctx *importContext, mapped ir.MappedType) bool {
	wd, ok := mapped.(ir.WithDeclIdsType)
	if !ok {
		return false
	}
	rec, ok := ctx.records[wd.CcId]
	if !ok {
		return false
	}
	return !rec.IsTrivialAbi()
}

// collectLifetimeIds walks mapped, accumulating every lifetime id
// attached to a pointer or lvalue-reference position into ids.
func collectLifetimeIds(mapped ir.MappedType, ids map[ir.LifetimeId]struct{}) {
	switch t := mapped.(type) {
	case ir.PointerType:
		if t.Lifetime != nil {
			ids[*t.Lifetime] = struct{}{}
		}
		collectLifetimeIds(t.Pointee, ids)
	case ir.LValueReferenceType:
		if t.Lifetime != nil {
			ids[*t.Lifetime] = struct{}{}
		}
		collectLifetimeIds(t.Pointee, ids)
	}
}

// sortedLifetimeParams resolves each accumulated lifetime id to its
// spelled name via the symbol table and sorts the result ascending by
// name, per §4.7.1 step 8.
func sortedLifetimeParams(ctx *importContext, ids map[ir.LifetimeId]struct{}) []ir.Lifetime {
	if len(ids) == 0 {
		return nil
	}
	out := make([]ir.Lifetime, 0, len(ids))
	for id := range ids {
		name, ok := ctx.cfg.LifetimeSymbols.Name(id)
		if !ok {
			panic(fmt.Sprintf("importer: lifetime id %d has no entry in the symbol table", id))
		}
		out = append(out, ir.Lifetime{Name: name, Id: id})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Id < out[j].Id
	})
	return out
}

// docCommentFor returns the cleaned doc comment text attached to decl,
// or "" when absent.
func docCommentFor(sm cxast.SourceManager, decl cxast.Decl) string {
	raw, ok := sm.DocCommentFor(decl)
	if !ok {
		return ""
	}
	return cleanComment(raw.Text)
}

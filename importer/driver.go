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
	"sort"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/ir"
)

// Config configures one call to Import. It bundles the inputs described
// in §6: the current target, the entry headers, the header→target map,
// and the external AST/source-manager/mangler/lifetime collaborators.
type Config struct {
	CurrentTarget  ir.TargetLabel
	EntryHeaders   []ir.HeaderName
	HeaderToTarget map[ir.HeaderName]ir.TargetLabel

	TranslationUnit cxast.DeclContext
	SourceManager    cxast.SourceManager
	Mangler          cxast.Mangler
	Lifetimes        cxast.LifetimeAnalyzer
	LifetimeSymbols  cxast.LifetimeSymbolTable
}

// importContext is the Importer's exclusively-owned, per-call mutable
// state: the lookup cache, the known-type-decls set, and the record
// registry the non-trivial-abi check in the function importer consults.
// It lives for the duration of a single Import call and is never shared
// across calls.
type importContext struct {
	cfg Config

	lookupCache map[ir.DeclId]ir.LookupResult
	known       *knownTypeDecls
	records     map[ir.DeclId]cxast.RecordDecl

	// importedRanges accumulates the source range/doc-comment inputs the
	// comment harvester needs, one entry per decl that produced an item.
	importedRanges []importedDeclRange
}

func newImportContext(cfg Config) *importContext {
	return &importContext{
		cfg:         cfg,
		lookupCache: make(map[ir.DeclId]ir.LookupResult),
		known:       newKnownTypeDecls(),
		records:     make(map[ir.DeclId]cxast.RecordDecl),
	}
}

// orderedItem pairs an IR item with the information the driver's sort
// comparator (§4.8 step 4) needs: the originating decl's source range
// and the local-order tie-break integer.
type orderedItem struct {
	item       ir.Item
	begin, end ir.SourceLoc
	localOrder int
}

// Import runs the Import Driver (§4.8) over cfg.TranslationUnit and
// returns the resulting ir.IR.
func Import(cfg Config) ir.IR {
	if err := validateConfig(cfg); err != nil {
		panic(err)
	}
	ctx := newImportContext(cfg)

	var ordered []orderedItem
	walkForDiscovery(ctx, cfg.TranslationUnit, &ordered)

	for _, c := range harvestFreeComments(cfg.SourceManager, cfg.EntryHeaders, ctx.importedRanges) {
		loc := c.(*ir.Comment).SourceLoc
		ordered = append(ordered, orderedItem{item: c, begin: loc, end: loc, localOrder: 0})
	}

	sortOrderedItems(ctx.cfg.SourceManager, ordered)

	items := make([]ir.Item, 0, len(ordered))
	for _, o := range ordered {
		items = append(items, o.item)
	}
	return ir.IR{
		UsedHeaders:   cfg.EntryHeaders,
		CurrentTarget: cfg.CurrentTarget,
		Items:         items,
	}
}

// walkForDiscovery visits every declaration in ctx, dispatching by kind
// per §4.8 step 2. Namespace and record contexts are recursed into as
// well: a namespace member is always an error, and a record's nested
// decls go through the same dispatch as top-level ones, so its methods
// produce Func items while nested records and typedefs produce
// UnsupportedItem diagnostics.
func walkForDiscovery(ctx *importContext, dc cxast.DeclContext, ordered *[]orderedItem) {
	for _, d := range dc.Decls() {
		dispatchDecl(ctx, d, ordered)
	}
}

// dispatchDecl handles one declaration per §4.8 step 2.
func dispatchDecl(ctx *importContext, d cxast.Decl, ordered *[]orderedItem) {
	if d.Kind() == cxast.DeclNamespace {
		if nsCtx, ok := d.(cxast.DeclContext); ok {
			walkForDiscovery(ctx, nsCtx, ordered)
		}
		return
	}

	named, _ := d.(cxast.NamedDecl)
	if isLexicallyInNamespace(d) {
		recordNamespaceError(ctx, named, ordered)
		return
	}

	result, localOrder := lookup(ctx, d)
	appendResult(ctx, d, result, localOrder, ordered)

	if rec, ok := d.(cxast.RecordDecl); ok && d.Kind() == cxast.DeclRecord {
		// Recurse into the record's context: member functions are
		// imported as Func items, other nested decls may contribute
		// UnsupportedItem diagnostics. §4.7.2 already decided whether the
		// record itself was importable.
		for _, nested := range rec.Decls() {
			dispatchDecl(ctx, nested, ordered)
		}
	}
}

func isLexicallyInNamespace(d cxast.Decl) bool {
	parent := d.LexicalParent()
	return parent != nil && parent.Kind() == cxast.DeclNamespace
}

func recordNamespaceError(ctx *importContext, named cxast.NamedDecl, ordered *[]orderedItem) {
	if named == nil {
		return
	}
	if !belongsToCurrentTarget(ctx.cfg.SourceManager, named, ctx.cfg.HeaderToTarget, ctx.cfg.CurrentTarget) {
		return
	}
	begin, end := named.SourceRange()
	item := &ir.UnsupportedItem{
		Name:      qualifiedNameOrUnnamed(named),
		Message:   "Items contained in namespaces are not supported yet",
		SourceLoc: translateSourceLoc(begin),
	}
	*ordered = append(*ordered, orderedItem{item: item, begin: begin, end: end, localOrder: 0})
}

func qualifiedNameOrUnnamed(named cxast.NamedDecl) string {
	if q := named.QualifiedName(); q != "" {
		return q
	}
	return "unnamed"
}

// lookup memoizes import(decl) keyed by its canonical pointer, per §4.8
// step 1, and returns the local-order tie-break for decl per §4.8 step
// 4.
func lookup(ctx *importContext, d cxast.Decl) (ir.LookupResult, int) {
	id := d.Canonical()
	if cached, ok := ctx.lookupCache[id]; ok {
		return cached, localOrderOf(d)
	}
	result := importDecl(ctx, d)
	ctx.lookupCache[id] = result
	return result, localOrderOf(d)
}

// importDecl dispatches to the per-kind declaration importer.
func importDecl(ctx *importContext, d cxast.Decl) ir.LookupResult {
	switch d.Kind() {
	case cxast.DeclFunction:
		fn, ok := d.(cxast.FuncDecl)
		if !ok {
			return ir.LookupResult{}
		}
		return importFunction(ctx, fn)
	case cxast.DeclFunctionTemplate:
		// Unwrap to the templated decl; the function importer's own
		// "skip if templated" rule then skips it silently, so a function
		// template produces neither an item nor an UnsupportedItem.
		if unwrapper, ok := d.(interface{ TemplatedDecl() cxast.Decl }); ok {
			return importDecl(ctx, unwrapper.TemplatedDecl())
		}
		return ir.LookupResult{}
	case cxast.DeclRecord:
		rec, ok := d.(cxast.RecordDecl)
		if !ok {
			return ir.LookupResult{}
		}
		return importRecord(ctx, rec)
	case cxast.DeclTypedefName:
		td, ok := d.(cxast.TypedefDecl)
		if !ok {
			return ir.LookupResult{}
		}
		return importTypedefName(ctx, td)
	case cxast.DeclClassTemplate:
		named, _ := d.(cxast.NamedDecl)
		if named == nil || !belongsToCurrentTarget(ctx.cfg.SourceManager, d, ctx.cfg.HeaderToTarget, ctx.cfg.CurrentTarget) {
			return ir.LookupResult{}
		}
		return ir.LookupResult{Errors: []string{"Class templates are not supported yet"}}
	default:
		return ir.LookupResult{}
	}
}

// localOrderOf implements §4.8 step 4's tie-break table.
func localOrderOf(d cxast.Decl) int {
	if fn, ok := d.(cxast.FuncDecl); ok && fn.IsMethod() {
		switch {
		case fn.IsDestructor():
			return 6
		case fn.IsConstructor():
			return constructorLocalOrder(fn)
		}
		return 7
	}
	if rec, ok := d.(cxast.RecordDecl); ok {
		if _, ok := rec.LexicalParent().(cxast.RecordDecl); ok {
			return 1
		}
		return 0
	}
	return 7
}

// constructorLocalOrder ranks a constructor by its parameter count:
// none is the default constructor (2), two or more is another overload
// (5). A single-parameter constructor ranks as copy (3) when its
// parameter is an lvalue reference and as move (4) otherwise; the
// parameter's referent is not compared with the owning record, so a
// single-parameter converting constructor ranks as copy or move too.
func constructorLocalOrder(fn cxast.FuncDecl) int {
	params := fn.Params()
	switch len(params) {
	case 0:
		return 2
	case 1:
		if params[0].Type().IsLValueReference() {
			return 3
		}
		return 4
	default:
		return 5
	}
}

func appendResult(ctx *importContext, d cxast.Decl, result ir.LookupResult, localOrder int, ordered *[]orderedItem) {
	var begin, end ir.SourceLoc
	if begin, end = d.SourceRange(); result.Item != nil {
		ctx.importedRanges = append(ctx.importedRanges, importedDeclRange{decl: d, begin: begin, end: end})
	}

	if result.Item != nil {
		*ordered = append(*ordered, orderedItem{item: result.Item, begin: begin, end: end, localOrder: localOrder})
	}

	if len(result.Errors) == 0 {
		return
	}
	named, _ := d.(cxast.NamedDecl)
	if named == nil || !belongsToCurrentTarget(ctx.cfg.SourceManager, d, ctx.cfg.HeaderToTarget, ctx.cfg.CurrentTarget) {
		return
	}
	for _, msg := range result.Errors {
		*ordered = append(*ordered, orderedItem{
			item: &ir.UnsupportedItem{
				Name:      qualifiedNameOrUnnamed(named),
				Message:   msg,
				SourceLoc: translateSourceLoc(begin),
			},
			begin: begin, end: end, localOrder: localOrder,
		})
	}
}

// sortOrderedItems implements §4.8 step 4's comparator: an invalid
// source range sorts first when exactly one side is invalid; otherwise
// compare begin, then end, in translation-unit order; ties break on
// localOrder.
func sortOrderedItems(sm cxast.SourceManager, ordered []orderedItem) {
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		return orderedItemLess(sm, a, b)
	})
}

func orderedItemLess(sm cxast.SourceManager, a, b orderedItem) bool {
	aInvalid, bInvalid := !a.begin.Valid(), !b.begin.Valid()
	if aInvalid != bInvalid {
		return aInvalid
	}
	if !aInvalid {
		if a.begin != b.begin {
			return sm.IsBeforeInTranslationUnit(a.begin, b.begin)
		}
		if a.end != b.end {
			return sm.IsBeforeInTranslationUnit(a.end, b.end)
		}
	}
	return a.localOrder < b.localOrder
}

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
	"reflect"
	"testing"

	"github.com/goplus/cxxbind/cxast"
	"github.com/goplus/cxxbind/ir"
)

const testTarget ir.TargetLabel = "//test:target"

func baseConfig(sm *fakeSourceManager, tu *fakeTranslationUnit) Config {
	return Config{
		CurrentTarget:  testTarget,
		EntryHeaders:   []ir.HeaderName{"test.h"},
		HeaderToTarget: map[ir.HeaderName]ir.TargetLabel{"test.h": testTarget},
		TranslationUnit: tu,
		SourceManager:   sm,
		Mangler:         &fakeMangler{},
	}
}

func onlyFunc(t *testing.T, res ir.IR) *ir.Func {
	t.Helper()
	var fns []*ir.Func
	for _, it := range res.Items {
		if fn, ok := it.(*ir.Func); ok {
			fns = append(fns, fn)
		}
	}
	if len(fns) != 1 {
		t.Fatalf("want exactly one Func, got %d (items=%#v)", len(fns), res.Items)
	}
	return fns[0]
}

// Scenario 1: int return_value() { return 42; } -> one Func with no
// params and no lifetime params.
func TestImportScenario1ReturnValue(t *testing.T) {
	sm := newFakeSourceManager()
	fn := freeFunc("return_value", loc(1, 1), loc(1, 40), intType())
	tu := newTU(fn)

	res := Import(baseConfig(sm, tu))
	got := onlyFunc(t, res)

	want := ir.SimpleType{TargetSpelling: "i32", Cc: ir.CCType{Spelling: "int"}}
	if !reflect.DeepEqual(got.ReturnType, want) {
		t.Errorf("ReturnType = %#v, want %#v", got.ReturnType, want)
	}
	if len(got.Params) != 0 {
		t.Errorf("Params = %#v, want empty", got.Params)
	}
	if len(got.LifetimeParams) != 0 {
		t.Errorf("LifetimeParams = %#v, want empty", got.LifetimeParams)
	}
}

// Scenario 2: int* return_pointer() compiled WITHOUT lifetime elision ->
// PointerTo(i32, lifetime=None, nullable=true).
func TestImportScenario2ReturnPointerNoLifetimes(t *testing.T) {
	sm := newFakeSourceManager()
	fn := freeFunc("return_pointer", loc(1, 1), loc(1, 30), pointerTo(intType()))
	tu := newTU(fn)

	res := Import(baseConfig(sm, tu))
	got := onlyFunc(t, res)

	ptr, ok := got.ReturnType.(ir.PointerType)
	if !ok {
		t.Fatalf("ReturnType = %#v, want PointerType", got.ReturnType)
	}
	if ptr.Lifetime != nil {
		t.Errorf("Lifetime = %v, want nil", *ptr.Lifetime)
	}
	if !ptr.Nullable {
		t.Errorf("Nullable = false, want true")
	}
}

// Scenario 3: int& free_function(int& p1) under lifetime elision -> one
// lifetime param "a" shared by the parameter and the return type.
func TestImportScenario3LifetimeElisionSharedLifetime(t *testing.T) {
	sm := newFakeSourceManager()
	p1 := param("p1", lvalueRefTo(intType()))
	fn := freeFunc("free_function", loc(1, 1), loc(1, 40), lvalueRefTo(intType()), p1)
	tu := newTU(fn)

	cfg := baseConfig(sm, tu)
	a := ir.LifetimeId(1)
	cfg.Lifetimes = &fakeLifetimeAnalyzer{byFunc: map[ir.DeclId]cxast.FunctionLifetimes{
		fn.Canonical(): {
			Param:  []cxast.LifetimeStack{newLifetimeStack(a)},
			Return: newLifetimeStack(a),
		},
	}}
	cfg.LifetimeSymbols = &fakeLifetimeSymbols{names: map[ir.LifetimeId]string{a: "a"}}

	res := Import(cfg)
	got := onlyFunc(t, res)

	if len(got.Params) != 1 {
		t.Fatalf("Params = %#v, want 1 entry", got.Params)
	}
	pref, ok := got.Params[0].Type.(ir.LValueReferenceType)
	if !ok || pref.Lifetime == nil || *pref.Lifetime != a {
		t.Errorf("param type = %#v, want LValueReferenceType with lifetime %v", got.Params[0].Type, a)
	}
	rref, ok := got.ReturnType.(ir.LValueReferenceType)
	if !ok || rref.Lifetime == nil || *rref.Lifetime != a {
		t.Errorf("return type = %#v, want LValueReferenceType with lifetime %v", got.ReturnType, a)
	}
	if len(got.LifetimeParams) != 1 || got.LifetimeParams[0].Name != "a" {
		t.Errorf("LifetimeParams = %#v, want [{a ...}]", got.LifetimeParams)
	}
}

// Scenario 4: struct S { int& method(int& p1, int& p2); } under lifetime
// elision -> one Record S plus one Func whose first param is __this
// with a non-null, non-const pointer to S; three distinct lifetimes
// appear, sorted by name.
func TestImportScenario4MethodWithThisAndLifetimes(t *testing.T) {
	sm := newFakeSourceManager()
	s := record("S", loc(1, 1), loc(5, 1))
	p1 := param("p1", lvalueRefTo(intType()))
	p2 := param("p2", lvalueRefTo(intType()))
	m := method("method", loc(2, 3), loc(2, 40), lvalueRefTo(intType()), s, p1, p2)
	s.children = []cxast.Decl{m}
	tu := newTU(s)

	cfg := baseConfig(sm, tu)
	a, b, c := ir.LifetimeId(1), ir.LifetimeId(2), ir.LifetimeId(3)
	cfg.Lifetimes = &fakeLifetimeAnalyzer{byFunc: map[ir.DeclId]cxast.FunctionLifetimes{
		m.Canonical(): {
			This:   newLifetimeStack(a),
			Param:  []cxast.LifetimeStack{newLifetimeStack(b), newLifetimeStack(c)},
			Return: newLifetimeStack(b),
		},
	}}
	cfg.LifetimeSymbols = &fakeLifetimeSymbols{names: map[ir.LifetimeId]string{a: "a", b: "b", c: "c"}}

	res := Import(cfg)

	var gotRecord *ir.Record
	var gotFunc *ir.Func
	for _, it := range res.Items {
		switch v := it.(type) {
		case *ir.Record:
			gotRecord = v
		case *ir.Func:
			gotFunc = v
		}
	}
	if gotRecord == nil {
		t.Fatalf("no Record in %#v", res.Items)
	}
	if gotRecord.IsFinal {
		t.Errorf("Record.IsFinal = true, want false")
	}
	if gotFunc == nil {
		t.Fatalf("no Func in %#v", res.Items)
	}
	if len(gotFunc.Params) != 3 {
		t.Fatalf("Params = %#v, want 3 (this, p1, p2)", gotFunc.Params)
	}
	this := gotFunc.Params[0]
	if this.Name.String() != "__this" {
		t.Errorf("first param name = %q, want __this", this.Name.String())
	}
	thisPtr, ok := this.Type.(ir.PointerType)
	if !ok {
		t.Fatalf("this type = %#v, want PointerType", this.Type)
	}
	if thisPtr.Nullable {
		t.Errorf("this.Nullable = true, want false")
	}
	if thisPtr.Cc.IsConst {
		t.Errorf("this.Cc.IsConst = true, want false")
	}
	if thisPtr.Lifetime == nil || *thisPtr.Lifetime != a {
		t.Errorf("this.Lifetime = %v, want %v", thisPtr.Lifetime, a)
	}
	names := make([]string, len(gotFunc.LifetimeParams))
	for i, lp := range gotFunc.LifetimeParams {
		names[i] = lp.Name
	}
	if !reflect.DeepEqual(names, []string{"a", "b", "c"}) {
		t.Errorf("LifetimeParams names = %v, want [a b c]", names)
	}
}

// Scenario 5: union U { int x; } -> one UnsupportedItem.
func TestImportScenario5Union(t *testing.T) {
	sm := newFakeSourceManager()
	u := record("U", loc(1, 1), loc(3, 1))
	u.union = true
	u.fields = []cxast.FieldDecl{field("x", intType(), 0)}
	tu := newTU(u)

	res := Import(baseConfig(sm, tu))

	var unsupported *ir.UnsupportedItem
	for _, it := range res.Items {
		if ui, ok := it.(*ir.UnsupportedItem); ok {
			unsupported = ui
		}
	}
	if unsupported == nil {
		t.Fatalf("no UnsupportedItem in %#v", res.Items)
	}
	if unsupported.Name != "U" {
		t.Errorf("Name = %q, want U", unsupported.Name)
	}
	if unsupported.Message != "Unions are not supported yet" {
		t.Errorf("Message = %q", unsupported.Message)
	}
}

// Scenario 6: a function with a non-trivially-relocatable record return
// type -> one UnsupportedItem with the exact by-value-return message.
func TestImportScenario6NonTrivialAbiReturn(t *testing.T) {
	sm := newFakeSourceManager()
	rec := record("T", loc(1, 1), loc(3, 1))
	rec.trivialAbi = false

	tagType := &fakeType{spelling: "T", tag: true, typeDecl: rec}
	fn := freeFunc("make_t", loc(5, 1), loc(5, 30), tagType)
	tu := newTU(rec, fn)

	res := Import(baseConfig(sm, tu))

	var msgs []string
	for _, it := range res.Items {
		if ui, ok := it.(*ir.UnsupportedItem); ok {
			msgs = append(msgs, ui.Message)
		}
	}
	want := "Non-trivial_abi type 'T' is not supported by value as a return type"
	found := false
	for _, m := range msgs {
		if m == want {
			found = true
		}
	}
	if !found {
		t.Errorf("messages = %v, want one equal to %q", msgs, want)
	}
}

// Determinism: two imports over two identically built fake graphs
// yield identical item sequences.
func TestImportDeterminism(t *testing.T) {
	build := func() (Config, ir.DeclId) {
		sm := newFakeSourceManager()
		fn := freeFunc("f", loc(1, 1), loc(1, 10), intType())
		tu := newTU(fn)
		return baseConfig(sm, tu), fn.Canonical()
	}

	cfg1, _ := build()
	cfg2, _ := build()
	r1 := Import(cfg1)
	r2 := Import(cfg2)
	if !reflect.DeepEqual(r1.Items, r2.Items) {
		t.Errorf("two imports produced different items:\n%#v\n%#v", r1.Items, r2.Items)
	}
}

// Out-of-target silence: a decl resolving to a different target than
// CurrentTarget contributes nothing.
func TestImportOutOfTargetSilence(t *testing.T) {
	sm := newFakeSourceManager()
	fn := freeFunc("other_target_func", loc(1, 1), loc(1, 10), intType())
	fn.begin.Filename = "other.h"
	fn.end.Filename = "other.h"
	tu := newTU(fn)

	cfg := baseConfig(sm, tu)
	// "other.h" is intentionally absent from HeaderToTarget, and is not
	// an EntryHeader, so it resolves to the virtual target, not
	// testTarget.
	res := Import(cfg)
	if len(res.Items) != 0 {
		t.Errorf("Items = %#v, want empty", res.Items)
	}
}

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

package ir

import "testing"

func TestNewHeaderNameTrimsLeadingDotSlash(t *testing.T) {
	cases := map[string]HeaderName{
		"./foo/bar.h": "foo/bar.h",
		"foo/bar.h":   "foo/bar.h",
		"./":          "",
	}
	for in, want := range cases {
		if got := NewHeaderName(in); got != want {
			t.Errorf("NewHeaderName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIdentifierString(t *testing.T) {
	if got := PlainIdent("Foo").String(); got != "Foo" {
		t.Errorf("PlainIdent.String() = %q", got)
	}
	if got := ConstructorIdent().String(); got != "constructor" {
		t.Errorf("ConstructorIdent.String() = %q", got)
	}
	if got := DestructorIdent().String(); got != "destructor" {
		t.Errorf("DestructorIdent.String() = %q", got)
	}
}

func TestMappedTypeWithConstPreservesVariant(t *testing.T) {
	simple := SimpleType{TargetSpelling: "i32", Cc: CCType{Spelling: "int"}}
	got := simple.WithConst(true)
	st, ok := got.(SimpleType)
	if !ok {
		t.Fatalf("WithConst changed variant: %#v", got)
	}
	if !st.CC().IsConst {
		t.Errorf("WithConst(true) did not set IsConst")
	}
	if st.TargetSpelling != "i32" {
		t.Errorf("WithConst mutated TargetSpelling: %q", st.TargetSpelling)
	}
}

func TestPointerTypeWithConstLeavesPointeeAlone(t *testing.T) {
	pointee := SimpleType{TargetSpelling: "i32", Cc: CCType{Spelling: "int"}}
	ptr := PointerType{Pointee: pointee, Nullable: true}
	got := ptr.WithConst(true).(PointerType)
	if !got.CC().IsConst {
		t.Errorf("pointer WithConst(true) did not set IsConst")
	}
	if got.Pointee.CC().IsConst {
		t.Errorf("pointer WithConst mutated pointee const-ness")
	}
}

func TestLookupResultSkipped(t *testing.T) {
	var empty LookupResult
	if !empty.Skipped() {
		t.Errorf("zero-value LookupResult should be Skipped")
	}
	withItem := LookupResult{Item: &Comment{Text: "x"}}
	if withItem.Skipped() {
		t.Errorf("LookupResult with an Item should not be Skipped")
	}
	withErrors := LookupResult{Errors: []string{"boom"}}
	if withErrors.Skipped() {
		t.Errorf("LookupResult with Errors should not be Skipped")
	}
}

func TestItemClosedVariantSet(t *testing.T) {
	items := []Item{
		&Func{Name: PlainIdent("f")},
		&Record{Identifier: PlainIdent("R")},
		&TypeAlias{Identifier: PlainIdent("T")},
		&UnsupportedItem{Name: "U"},
		&Comment{Text: "c"},
	}
	for _, it := range items {
		switch it.(type) {
		case *Func, *Record, *TypeAlias, *UnsupportedItem, *Comment:
			// expected
		default:
			t.Errorf("unexpected item variant %T", it)
		}
	}
}

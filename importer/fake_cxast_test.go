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

// fakeDecl is the common embed for every fake declaration. Tests build
// small ASTs by hand; no real Clang is involved.
type fakeDecl struct {
	id            ir.DeclId
	kind          cxast.DeclKind
	name          *ir.Identifier
	qualifiedName string
	parent        cxast.DeclContext
	begin, end    ir.SourceLoc
	invalid       bool
	children      []cxast.Decl
}

func (d *fakeDecl) Canonical() ir.DeclId        { return d.id }
func (d *fakeDecl) Kind() cxast.DeclKind        { return d.kind }
func (d *fakeDecl) LexicalParent() cxast.DeclContext { return d.parent }
func (d *fakeDecl) SourceLoc() ir.SourceLoc     { return d.begin }
func (d *fakeDecl) SourceRange() (ir.SourceLoc, ir.SourceLoc) { return d.begin, d.end }
func (d *fakeDecl) IsInvalidLocation() bool     { return d.invalid }
func (d *fakeDecl) Decls() []cxast.Decl         { return d.children }

func (d *fakeDecl) Name() (ir.Identifier, bool) {
	if d.name == nil {
		return ir.Identifier{}, false
	}
	return *d.name, true
}

func (d *fakeDecl) QualifiedName() string {
	if d.qualifiedName != "" {
		return d.qualifiedName
	}
	if d.name != nil {
		return d.name.String()
	}
	return ""
}

func loc(line, col int) ir.SourceLoc {
	return ir.SourceLoc{Filename: "test.h", Line: line, Column: col}
}

func namedIdent(name string) *ir.Identifier {
	id := ir.PlainIdent(name)
	return &id
}

// fakeType implements cxast.Type.
type fakeType struct {
	spelling  string
	isConst   bool
	pointer   bool
	lvalueRef bool
	pointee   cxast.Type
	builtin   cxast.BuiltinKind
	intWidth  int
	unsigned  bool
	tag       bool
	typedef   bool
	typeDecl  cxast.NamedDecl
}

func (t *fakeType) Spelling() string          { return t.spelling }
func (t *fakeType) IsConst() bool             { return t.isConst }
func (t *fakeType) IsPointer() bool           { return t.pointer }
func (t *fakeType) Pointee() cxast.Type       { return t.pointee }
func (t *fakeType) IsLValueReference() bool   { return t.lvalueRef }
func (t *fakeType) Builtin() cxast.BuiltinKind { return t.builtin }
func (t *fakeType) IntegerWidth() int         { return t.intWidth }
func (t *fakeType) IsUnsigned() bool          { return t.unsigned }
func (t *fakeType) IsTagType() bool           { return t.tag }
func (t *fakeType) IsTypedefType() bool       { return t.typedef }
func (t *fakeType) TypeDecl() cxast.NamedDecl { return t.typeDecl }

func intType() *fakeType {
	return &fakeType{spelling: "int", builtin: cxast.BuiltinInteger, intWidth: 32, unsigned: false}
}

func pointerTo(pointee *fakeType) *fakeType {
	return &fakeType{spelling: pointee.spelling + " *", pointer: true, pointee: pointee}
}

func lvalueRefTo(pointee *fakeType) *fakeType {
	return &fakeType{spelling: pointee.spelling + " &", lvalueRef: true, pointee: pointee}
}

func voidType() *fakeType {
	return &fakeType{spelling: "void", builtin: cxast.BuiltinVoid}
}

// fakeParamDecl implements cxast.ParamDecl.
type fakeParamDecl struct {
	*fakeDecl
	typ cxast.Type
}

func (p *fakeParamDecl) Type() cxast.Type { return p.typ }

func param(name string, typ cxast.Type) *fakeParamDecl {
	var n *ir.Identifier
	if name != "" {
		n = namedIdent(name)
	}
	return &fakeParamDecl{fakeDecl: &fakeDecl{name: n}, typ: typ}
}

// fakeFuncDecl implements cxast.FuncDecl.
type fakeFuncDecl struct {
	*fakeDecl
	deleted, templated, inline bool
	returnType                 cxast.Type
	params                     []cxast.ParamDecl
	isMethod                   bool
	parent                     cxast.RecordDecl
	constMethod, virtualMethod bool
	refQual                    ir.ReferenceQualification
	access                     ir.AccessSpecifier
	isCtor, isDtor, explicit   bool
	thisType                   cxast.Type
}

func (f *fakeFuncDecl) IsDeleted() bool                             { return f.deleted }
func (f *fakeFuncDecl) IsTemplated() bool                           { return f.templated }
func (f *fakeFuncDecl) IsInline() bool                              { return f.inline }
func (f *fakeFuncDecl) ReturnType() cxast.Type                      { return f.returnType }
func (f *fakeFuncDecl) Params() []cxast.ParamDecl                   { return f.params }
func (f *fakeFuncDecl) IsMethod() bool                              { return f.isMethod }
func (f *fakeFuncDecl) Parent() cxast.RecordDecl                    { return f.parent }
func (f *fakeFuncDecl) IsConstMethod() bool                         { return f.constMethod }
func (f *fakeFuncDecl) IsVirtualMethod() bool                       { return f.virtualMethod }
func (f *fakeFuncDecl) RefQualification() ir.ReferenceQualification { return f.refQual }
func (f *fakeFuncDecl) Access() ir.AccessSpecifier                  { return f.access }
func (f *fakeFuncDecl) IsConstructor() bool                         { return f.isCtor }
func (f *fakeFuncDecl) IsDestructor() bool                          { return f.isDtor }
func (f *fakeFuncDecl) IsExplicitCtor() bool                        { return f.explicit }
func (f *fakeFuncDecl) ThisType() cxast.Type                        { return f.thisType }

func freeFunc(name string, begin, end ir.SourceLoc, returnType cxast.Type, params ...cxast.ParamDecl) *fakeFuncDecl {
	return &fakeFuncDecl{
		fakeDecl:   &fakeDecl{id: nextId(), kind: cxast.DeclFunction, name: namedIdent(name), begin: begin, end: end},
		returnType: returnType,
		params:     params,
		access:     ir.AccessPublic,
	}
}

func method(name string, begin, end ir.SourceLoc, returnType cxast.Type, parent *fakeRecordDecl, params ...cxast.ParamDecl) *fakeFuncDecl {
	return &fakeFuncDecl{
		fakeDecl:   &fakeDecl{id: nextId(), kind: cxast.DeclFunction, name: namedIdent(name), begin: begin, end: end, parent: parent},
		returnType: returnType,
		params:     params,
		isMethod:   true,
		parent:     parent,
		access:     ir.AccessPublic,
		thisType:   pointerTo(&fakeType{spelling: parent.QualifiedName(), tag: true, typeDecl: parent}),
	}
}

// fakeFieldDecl implements cxast.FieldDecl.
type fakeFieldDecl struct {
	*fakeDecl
	typ        cxast.Type
	access     *ir.AccessSpecifier
	offsetBits int64
}

func (f *fakeFieldDecl) Type() cxast.Type { return f.typ }
func (f *fakeFieldDecl) DeclaredAccess() (ir.AccessSpecifier, bool) {
	if f.access == nil {
		return 0, false
	}
	return *f.access, true
}
func (f *fakeFieldDecl) OffsetInBits() int64 { return f.offsetBits }

func field(name string, typ cxast.Type, offsetBits int64) *fakeFieldDecl {
	return &fakeFieldDecl{fakeDecl: &fakeDecl{name: namedIdent(name)}, typ: typ, offsetBits: offsetBits}
}

// fakeRecordDecl implements cxast.RecordDecl.
type fakeRecordDecl struct {
	*fakeDecl
	union, cxxClass, classTemplate, injected bool
	hasDefinition, cStyle, effectivelyFinal  bool
	trivialAbi                               bool
	fields                                   []cxast.FieldDecl
	sizeBytes, alignBytes                    int64
	copyCtor, moveCtor, dtor                 ir.SpecialMemberFunc
}

func (r *fakeRecordDecl) IsUnion() bool                        { return r.union }
func (r *fakeRecordDecl) IsCXXClass() bool                     { return r.cxxClass }
func (r *fakeRecordDecl) IsClassTemplateOrSpecialization() bool { return r.classTemplate }
func (r *fakeRecordDecl) IsInjectedClassName() bool            { return r.injected }
func (r *fakeRecordDecl) HasDefinition() bool                  { return r.hasDefinition }
func (r *fakeRecordDecl) IsCStyleStruct() bool                 { return r.cStyle }
func (r *fakeRecordDecl) IsEffectivelyFinal() bool              { return r.effectivelyFinal }
func (r *fakeRecordDecl) IsTrivialAbi() bool                    { return r.trivialAbi }
func (r *fakeRecordDecl) Fields() []cxast.FieldDecl             { return r.fields }
func (r *fakeRecordDecl) SizeBytes() int64                      { return r.sizeBytes }
func (r *fakeRecordDecl) AlignmentBytes() int64                 { return r.alignBytes }
func (r *fakeRecordDecl) CopyConstructor() ir.SpecialMemberFunc  { return r.copyCtor }
func (r *fakeRecordDecl) MoveConstructor() ir.SpecialMemberFunc  { return r.moveCtor }
func (r *fakeRecordDecl) Destructor() ir.SpecialMemberFunc       { return r.dtor }
func (r *fakeRecordDecl) ForceDeclarationOfImplicitMembers()     {}

func record(name string, begin, end ir.SourceLoc) *fakeRecordDecl {
	return &fakeRecordDecl{
		fakeDecl:      &fakeDecl{id: ir.DeclId(nextId()), kind: cxast.DeclRecord, name: namedIdent(name), begin: begin, end: end},
		cxxClass:      true,
		hasDefinition: true,
		trivialAbi:    true,
	}
}

// fakeTypedefDecl implements cxast.TypedefDecl.
type fakeTypedefDecl struct {
	*fakeDecl
	underlying cxast.Type
	spelling   string
}

func (t *fakeTypedefDecl) UnderlyingType() cxast.Type { return t.underlying }
func (t *fakeTypedefDecl) Spelling() string           { return t.spelling }

func typedefDecl(name, spelling string, begin, end ir.SourceLoc, underlying cxast.Type) *fakeTypedefDecl {
	return &fakeTypedefDecl{
		fakeDecl:   &fakeDecl{id: nextId(), kind: cxast.DeclTypedefName, name: namedIdent(name), begin: begin, end: end},
		underlying: underlying,
		spelling:   spelling,
	}
}

// fakeTranslationUnit implements cxast.DeclContext for the root scope.
type fakeTranslationUnit struct {
	*fakeDecl
}

func newTU(decls ...cxast.Decl) *fakeTranslationUnit {
	return &fakeTranslationUnit{fakeDecl: &fakeDecl{kind: cxast.DeclTranslationUnit, children: decls}}
}

var idCounter ir.DeclId

func nextId() ir.DeclId {
	idCounter++
	return idCounter
}

// fakeSourceManager implements cxast.SourceManager using line/column for
// translation-unit order and a hand-rolled include graph for
// OwningTargetOf, mirroring cxast/libclang's real multi-hop walk
// (§4.4) rather than a single-hop lookup: includedBy maps a header to
// whatever #included it, and systemHeaders marks the headers where the
// walk must stop without reaching a target.
type fakeSourceManager struct {
	comments      map[ir.HeaderName][]cxast.RawComment
	docs          map[ir.DeclId]cxast.RawComment
	includedBy    map[string]string
	systemHeaders map[string]bool
}

func newFakeSourceManager() *fakeSourceManager {
	return &fakeSourceManager{
		comments:      make(map[ir.HeaderName][]cxast.RawComment),
		docs:          make(map[ir.DeclId]cxast.RawComment),
		includedBy:    make(map[string]string),
		systemHeaders: make(map[string]bool),
	}
}

func (sm *fakeSourceManager) IsBeforeInTranslationUnit(a, b ir.SourceLoc) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// OwningTargetOf walks sm.includedBy from loc.Filename upward exactly
// as cxast/libclang's sourceManagerAdapter.OwningTargetOf walks a real
// include graph: on a miss, it steps to the including file and keeps
// going unless that next file is unknown or marked as a system header.
func (sm *fakeSourceManager) OwningTargetOf(loc ir.SourceLoc, headerToTarget map[ir.HeaderName]ir.TargetLabel) ir.TargetLabel {
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
		next := sm.includedBy[current]
		if next == "" || sm.systemHeaders[next] {
			break
		}
		current = next
	}
	return ir.VirtualCompilerResourcesTarget
}

func (sm *fakeSourceManager) RawCommentsIn(header ir.HeaderName) []cxast.RawComment {
	return sm.comments[header]
}

func (sm *fakeSourceManager) DocCommentFor(decl cxast.Decl) (cxast.RawComment, bool) {
	raw, ok := sm.docs[decl.Canonical()]
	return raw, ok
}

// fakeMangler implements cxast.Mangler with a fixed lookup table keyed
// by decl id, falling back to the decl's translated name.
type fakeMangler struct {
	names map[ir.DeclId]string
}

func (m *fakeMangler) MangleName(decl cxast.NamedDecl) string {
	if m.names != nil {
		if name, ok := m.names[decl.Canonical()]; ok {
			return name
		}
	}
	if id, ok := decl.Name(); ok {
		return "_Z" + id.String()
	}
	return "_Z_unknown"
}

// fakeLifetimeStack is a slice-backed stack consumed back-to-front.
type fakeLifetimeStack struct {
	ids []ir.LifetimeId
}

func newLifetimeStack(ids ...ir.LifetimeId) *fakeLifetimeStack {
	return &fakeLifetimeStack{ids: ids}
}

func (s *fakeLifetimeStack) Empty() bool { return len(s.ids) == 0 }

func (s *fakeLifetimeStack) Pop() ir.LifetimeId {
	last := s.ids[len(s.ids)-1]
	s.ids = s.ids[:len(s.ids)-1]
	return last
}

// fakeLifetimeSymbols implements cxast.LifetimeSymbolTable.
type fakeLifetimeSymbols struct {
	names map[ir.LifetimeId]string
}

func (s *fakeLifetimeSymbols) Name(id ir.LifetimeId) (string, bool) {
	name, ok := s.names[id]
	return name, ok
}

// fakeLifetimeAnalyzer implements cxast.LifetimeAnalyzer with a fixed
// table keyed by function decl id.
type fakeLifetimeAnalyzer struct {
	byFunc map[ir.DeclId]cxast.FunctionLifetimes
}

func (a *fakeLifetimeAnalyzer) GetLifetimeAnnotations(fn cxast.FuncDecl, _ cxast.LifetimeSymbolTable) (cxast.FunctionLifetimes, error) {
	lt, ok := a.byFunc[fn.Canonical()]
	if !ok {
		return cxast.FunctionLifetimes{}, errNoLifetimes
	}
	return lt, nil
}

var errNoLifetimes = &noLifetimesError{}

type noLifetimesError struct{}

func (*noLifetimesError) Error() string { return "no lifetime annotations available" }

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

// importRecord implements §4.7.2.
func importRecord(ctx *importContext, rec cxast.RecordDecl) ir.LookupResult {
	if !belongsToCurrentTarget(ctx.cfg.SourceManager, rec, ctx.cfg.HeaderToTarget, ctx.cfg.CurrentTarget) {
		return ir.LookupResult{}
	}
	if isInsideFunction(rec) || rec.IsInjectedClassName() || !rec.HasDefinition() {
		return ir.LookupResult{}
	}
	if _, ok := rec.LexicalParent().(cxast.RecordDecl); ok {
		return ir.LookupResult{Errors: []string{"Nested classes are not supported yet"}}
	}
	if rec.IsUnion() {
		return ir.LookupResult{Errors: []string{"Unions are not supported yet"}}
	}
	if rec.IsCXXClass() && rec.IsClassTemplateOrSpecialization() {
		return ir.LookupResult{Errors: []string{"Class templates are not supported yet"}}
	}

	rec.ForceDeclarationOfImplicitMembers()

	defaultAccess := ir.AccessPrivate
	if rec.IsCStyleStruct() {
		defaultAccess = ir.AccessPublic
	}

	id := rec.Canonical()
	name, ok := translatedName(rec)
	if !ok {
		return ir.LookupResult{}
	}

	// Provisional insertion: fields whose type mentions rec directly
	// (e.g. a Node* next member) must resolve against rec's own DeclId
	// before rec itself has finished importing.
	ctx.known.insert(id, name)
	ctx.records[id] = rec

	var fields []ir.Field
	for _, f := range rec.Fields() {
		field, err := importField(ctx, f, defaultAccess)
		if err != nil {
			ctx.known.remove(id)
			delete(ctx.records, id)
			return ir.LookupResult{Errors: []string{err.Error()}}
		}
		fields = append(fields, field)
	}

	begin, _ := rec.SourceRange()
	return ir.LookupResult{Item: &ir.Record{
		Identifier:      name,
		Id:              id,
		OwningTarget:    owningTargetOf(ctx.cfg.SourceManager, rec, ctx.cfg.HeaderToTarget),
		DocComment:      docCommentFor(ctx.cfg.SourceManager, rec),
		Fields:          fields,
		SizeBytes:       rec.SizeBytes(),
		AlignmentBytes:  rec.AlignmentBytes(),
		CopyConstructor: rec.CopyConstructor(),
		MoveConstructor: rec.MoveConstructor(),
		Destructor:      rec.Destructor(),
		IsTrivialAbi:    rec.IsTrivialAbi(),
		IsFinal:         rec.IsEffectivelyFinal(),
		SourceLoc:       translateSourceLoc(begin),
	}}
}

// importField converts one field. A failure here aborts the whole
// record import: the caller removes the provisional insertion and
// surfaces this error as the record's own error (§4.7.2 steps 8-9).
func importField(ctx *importContext, f cxast.FieldDecl, defaultAccess ir.AccessSpecifier) (ir.Field, error) {
	mapped, err := convertType(f.Type(), nil, true, ctx.known)
	if err != nil {
		return ir.Field{}, fmt.Errorf("Field type '%s' is not supported", f.Type().Spelling())
	}
	access := defaultAccess
	if declared, ok := f.DeclaredAccess(); ok {
		access = declared
	}
	name, ok := translatedName(f)
	if !ok {
		return ir.Field{}, fmt.Errorf("Cannot translate name for field '%s'", f.QualifiedName())
	}
	return ir.Field{
		Identifier:   name,
		DocComment:   docCommentFor(ctx.cfg.SourceManager, f),
		Type:         mapped,
		Access:       access,
		OffsetInBits: f.OffsetInBits(),
	}, nil
}

func isInsideFunction(d cxast.Decl) bool {
	parent := d.LexicalParent()
	return parent != nil && parent.Kind() != cxast.DeclNamespace && parent.Kind() != cxast.DeclTranslationUnit && parent.Kind() != cxast.DeclRecord
}

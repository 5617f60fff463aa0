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

// LookupResult is the memoized outcome of importing one declaration:
// exactly one of an item, a list of per-decl error strings, or nothing
// (silent skip).
type LookupResult struct {
	Item   Item     // non-nil on success
	Errors []string // non-empty on a per-decl error
}

// Skipped reports whether the declaration produced neither an item nor
// errors.
func (r LookupResult) Skipped() bool {
	return r.Item == nil && len(r.Errors) == 0
}

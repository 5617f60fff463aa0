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

// Package importer implements the Importer: the AST-walking pass that
// turns one C++ translation unit into an ir.IR.
package importer

// typeDictionary maps canonical C++ type spellings to their mapped
// equivalents. Both the unqualified-namespace and std::-qualified forms
// of each standard-width integer, pointer-sized integer, and wide
// character type are present, since user code may spell either.
var typeDictionary = map[string]string{
	"int8_t":  "i8",
	"int16_t": "i16",
	"int32_t": "i32",
	"int64_t": "i64",

	"std::int8_t":  "i8",
	"std::int16_t": "i16",
	"std::int32_t": "i32",
	"std::int64_t": "i64",

	"uint8_t":  "u8",
	"uint16_t": "u16",
	"uint32_t": "u32",
	"uint64_t": "u64",

	"std::uint8_t":  "u8",
	"std::uint16_t": "u16",
	"std::uint32_t": "u32",
	"std::uint64_t": "u64",

	"intptr_t":  "isize",
	"uintptr_t": "usize",
	"size_t":    "usize",
	"ptrdiff_t": "isize",

	"std::intptr_t":  "isize",
	"std::uintptr_t": "usize",
	"std::size_t":    "usize",
	"std::ptrdiff_t": "isize",

	"wchar_t": "u32",
}

// lookupTypeDictionary returns the mapped-type spelling for spelling, if
// spelling is a key of the Type Dictionary.
func lookupTypeDictionary(spelling string) (string, bool) {
	mapped, ok := typeDictionary[spelling]
	return mapped, ok
}

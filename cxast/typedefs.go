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

package cxast

// TypedefDecl is a typedef or using-declaration naming a type.
type TypedefDecl interface {
	NamedDecl
	UnderlyingType() Type
	// Spelling is the typedef's own type spelling (e.g. "int32_t" for
	// "typedef int int32_t;"), as opposed to its underlying type's
	// spelling. The Type Dictionary pre-emption check in §4.7.3 step 2
	// uses this, not UnderlyingType().Spelling().
	Spelling() string
}

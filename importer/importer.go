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

	"github.com/qiniu/x/errors"
)

// validateConfig checks that every collaborator Import requires is
// present, accumulating every missing one before failing so a caller
// sees the whole picture in one panic rather than fixing one field at a
// time. A missing required collaborator is a programmer error akin to
// the fatal invariant violations of §7 channel 3, not a user-input
// error, so Import panics on it rather than returning it.
func validateConfig(cfg Config) error {
	var errs errors.List
	if cfg.TranslationUnit == nil {
		errs.Add(fmt.Errorf("importer: Config.TranslationUnit is required"))
	}
	if cfg.SourceManager == nil {
		errs.Add(fmt.Errorf("importer: Config.SourceManager is required"))
	}
	if cfg.Mangler == nil {
		errs.Add(fmt.Errorf("importer: Config.Mangler is required"))
	}
	if cfg.CurrentTarget == "" {
		errs.Add(fmt.Errorf("importer: Config.CurrentTarget is required"))
	}
	if cfg.Lifetimes != nil && cfg.LifetimeSymbols == nil {
		errs.Add(fmt.Errorf("importer: Config.LifetimeSymbols is required when Config.Lifetimes is set"))
	}
	return errs.ToError()
}

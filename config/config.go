/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package config holds the interpreter's tunable settings. Wisp is meant to
be embedded, so settings live on a per-Evaluator Config value built from a
map of raw values read with small Str/Int/Bool coercion helpers, rather
than a single process-wide global.
*/
package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
)

/*
ProductVersion is the current version of the language implementation.
*/
const ProductVersion = "0.1.0"

/*
Known configuration keys.
*/
const (
	MaxCallDepth = "MaxCallDepth"
	FloatFormatKey = "FloatFormat"
)

/*
DefaultSettings pairs every recognised key with the value a fresh Config
starts with.
*/
var DefaultSettings = map[string]interface{}{
	MaxCallDepth:   1000,
	FloatFormatKey: "%g",
}

/*
Config is the resolved set of interpreter settings. MaxCallDepth guards
against runaway recursion — the original prototype evaluator has no such
guard and simply overflows the host call stack; Go has no equivalent
safety net, so this check is added explicitly.
*/
type Config struct {
	MaxCallDepth int
	FloatFormat  string
}

/*
New builds a Config from a settings map, falling back to DefaultSettings
for any key that is absent.
*/
func New(settings map[string]interface{}) *Config {
	data := make(map[string]interface{}, len(DefaultSettings))
	for k, v := range DefaultSettings {
		data[k] = v
	}
	for k, v := range settings {
		data[k] = v
	}

	return &Config{
		MaxCallDepth: Int(data, MaxCallDepth),
		FloatFormat:  Str(data, FloatFormatKey),
	}
}

/*
Default returns a Config built entirely from DefaultSettings.
*/
func Default() *Config {
	return New(nil)
}

// Helper functions
// ================

/*
Str reads a settings value as a string.
*/
func Str(settings map[string]interface{}, key string) string {
	return fmt.Sprint(settings[key])
}

/*
Int reads a settings value as an int, asserting it parses cleanly — a
malformed built-in default is a programming error, not a user-facing one.
*/
func Int(settings map[string]interface{}, key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(settings[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a settings value as a bool.
*/
func Bool(settings map[string]interface{}, key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(settings[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))

	return ret
}

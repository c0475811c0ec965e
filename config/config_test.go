/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxCallDepth != 1000 {
		t.Errorf("MaxCallDepth = %d, want 1000", cfg.MaxCallDepth)
	}
	if cfg.FloatFormat != "%g" {
		t.Errorf("FloatFormat = %q, want %%g", cfg.FloatFormat)
	}
}

func TestNewOverridesDefaults(t *testing.T) {
	cfg := New(map[string]interface{}{MaxCallDepth: 50})
	if cfg.MaxCallDepth != 50 {
		t.Errorf("MaxCallDepth = %d, want 50", cfg.MaxCallDepth)
	}
	if cfg.FloatFormat != "%g" {
		t.Errorf("FloatFormat = %q, want unchanged default %%g", cfg.FloatFormat)
	}
}

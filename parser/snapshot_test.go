/*
 * Wisp
 *
 * Copyright 2026 Wisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

/*
TestPrintSnapshots pins the AST printer's output for a representative
sample of programs, catching accidental shape changes to Print's
rendering.
*/
func TestPrintSnapshots(t *testing.T) {
	programs := map[string]string{
		"arithmetic": `1 + 2 * (3 - 4) ** 2`,
		"control_flow": `
function classify(n) {
    if n < 0 {
        return "negative"
    } else {
        return "non-negative"
    }
}
`,
		"loop_and_collection": `
total = 0
for x in [1, 2, 3] {
    total += x
}
`,
	}

	for name, src := range programs {
		prog, err := Parse("snapshot.wisp", src)
		if err != nil {
			t.Fatalf("%s: parse error: %v", name, err)
		}
		snaps.MatchSnapshot(t, name, Print(prog))
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package style

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (the '#' is
// optional) or "transparent".
//
// gg.Hex silently maps malformed input to black, so the digits are checked
// here first.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return gg.RGBA{}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: color %q: want 3, 4, 6 or 8 hex digits", ErrInvalidConfig, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return gg.RGBA{}, fmt.Errorf("%w: color %q: bad digit %q", ErrInvalidConfig, s, hex[i])
		}
	}
	return gg.Hex(hex), nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

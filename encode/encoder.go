// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package encode turns content strings into QR module matrices.
//
// Symbol encoding is delegated to existing libraries; this package only
// adapts them to one Encoder interface and hands out immutable Matrix values.
//
//	enc := encode.Default()
//	m, err := enc.Encode("https://gogpu.dev", encode.LevelM)
//
// Two encoders are built in: "qrcode" (github.com/skip2/go-qrcode, the
// default) and "rsc" (rsc.io/qr). Both return the symbol without a quiet
// zone; margins are a styling concern.
package encode

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Errors returned by encoders.
var (
	// ErrEmptyContent is returned for empty or whitespace-only content.
	ErrEmptyContent = errors.New("encode: content cannot be empty")

	// ErrEncode wraps failures from the underlying QR library.
	ErrEncode = errors.New("encode: failed to encode content")

	// ErrNotSquare is returned by NewMatrix for ragged or empty input.
	ErrNotSquare = errors.New("encode: matrix must be square")

	// ErrUnknownEncoder is returned by ByName.
	ErrUnknownEncoder = errors.New("encode: unknown encoder")

	// ErrInvalidLevel is returned by ParseLevel.
	ErrInvalidLevel = errors.New("encode: invalid error correction level")
)

// Level is the QR error correction level.
type Level int

const (
	// LevelL recovers about 7% of the symbol.
	LevelL Level = iota
	// LevelM recovers about 15% of the symbol.
	LevelM
	// LevelQ recovers about 25% of the symbol.
	LevelQ
	// LevelH recovers about 30% of the symbol. Use it with logos.
	LevelH
)

var levelNames = [...]string{LevelL: "L", LevelM: "M", LevelQ: "Q", LevelH: "H"}

// String returns "L", "M", "Q" or "H".
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	return l >= LevelL && l <= LevelH
}

// ParseLevel parses "L", "M", "Q" or "H" (case-insensitive).
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Encoder produces the module matrix for content at the given level.
// Implementations must be safe for concurrent use.
type Encoder interface {
	Encode(content string, level Level) (Matrix, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(content string, level Level) (Matrix, error)

// Encode implements Encoder.
func (f EncoderFunc) Encode(content string, level Level) (Matrix, error) {
	return f(content, level)
}

var encoders = map[string]func() Encoder{
	"qrcode": func() Encoder { return NewQRCodeEncoder() },
	"rsc":    func() Encoder { return NewRSCEncoder() },
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns a built-in encoder.
func ByName(name string) (Encoder, error) {
	newEncoder, ok := encoders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownEncoder, name, strings.Join(Names(), ", "))
	}
	return newEncoder(), nil
}

// Default returns the default encoder: go-qrcode with NFC normalization
// and a shared matrix cache.
func Default() Encoder {
	return defaultEncoder
}

var defaultEncoder = NewCachingEncoder(Normalized(NewQRCodeEncoder()), 0)

// Normalized wraps enc so content is converted to Unicode NFC before
// encoding. Visually identical strings then produce identical symbols.
func Normalized(enc Encoder) Encoder {
	return EncoderFunc(func(content string, level Level) (Matrix, error) {
		return enc.Encode(norm.NFC.String(content), level)
	})
}

func checkInput(content string, level Level) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	return nil
}

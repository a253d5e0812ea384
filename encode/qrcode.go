// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package encode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
	"rsc.io/qr"
)

// QRCodeEncoder encodes with github.com/skip2/go-qrcode.
type QRCodeEncoder struct{}

// NewQRCodeEncoder returns the go-qrcode backed encoder.
func NewQRCodeEncoder() *QRCodeEncoder {
	return &QRCodeEncoder{}
}

var qrcodeLevels = [...]qrcode.RecoveryLevel{
	LevelL: qrcode.Low,
	LevelM: qrcode.Medium,
	LevelQ: qrcode.High,
	LevelH: qrcode.Highest,
}

// Encode implements Encoder.
func (e *QRCodeEncoder) Encode(content string, level Level) (Matrix, error) {
	if err := checkInput(content, level); err != nil {
		return Matrix{}, err
	}
	q, err := qrcode.New(content, qrcodeLevels[level])
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	q.DisableBorder = true
	m, err := NewMatrix(q.Bitmap())
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return m, nil
}

// RSCEncoder encodes with rsc.io/qr.
type RSCEncoder struct{}

// NewRSCEncoder returns the rsc.io/qr backed encoder.
func NewRSCEncoder() *RSCEncoder {
	return &RSCEncoder{}
}

var rscLevels = [...]qr.Level{
	LevelL: qr.L,
	LevelM: qr.M,
	LevelQ: qr.Q,
	LevelH: qr.H,
}

// Encode implements Encoder.
func (e *RSCEncoder) Encode(content string, level Level) (Matrix, error) {
	if err := checkInput(content, level); err != nil {
		return Matrix{}, err
	}
	code, err := qr.Encode(content, rscLevels[level])
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	// Code.Black takes (x, y).
	return newMatrixFunc(code.Size, func(row, col int) bool {
		return code.Black(col, row)
	}), nil
}

var (
	_ Encoder = (*QRCodeEncoder)(nil)
	_ Encoder = (*RSCEncoder)(nil)
)

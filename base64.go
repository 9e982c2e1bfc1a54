// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base64

import (
	"errors"
	"fmt"
)

// The two RFC 4648 alphabets. Values 0-61 are shared; only the symbols for
// 62 and 63 differ.
const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// ErrInvalidInput is returned (wrapped) by Decode when the input contains a
// byte outside the accepted symbol, whitespace and padding sets, or when the
// symbols form a truncated final group. Match it with errors.Is.
var ErrInvalidInput = errors.New("base64: invalid input")

// EncodedLen returns the number of characters Encode and EncodeURL produce
// for n input bytes: four characters per started group of three bytes,
// padding included.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum number of bytes Decode can produce for n
// input characters. It is an upper bound rather than an exact count: Decode
// is permissive, and whitespace or padding in the input occupies characters
// without contributing output bytes.
func DecodedLen(n int) int {
	return n * 6 / 8
}

// Encode returns the standard-alphabet Base64 encoding of src, padded with
// '=' to a multiple of four characters. Encode never fails; an empty or nil
// src encodes to "".
func Encode(src []byte) string {
	return encode(src, stdAlphabet)
}

// EncodeURL is Encode with the URL-safe alphabet ('-' and '_' instead of
// '+' and '/'). Output is padded exactly like Encode's.
func EncodeURL(src []byte) string {
	return encode(src, urlAlphabet)
}

func encode(src []byte, alphabet string) string {
	out := make([]byte, EncodedLen(len(src)))

	// Whole 3-byte groups: 24 bits in, four 6-bit symbols out, high bits
	// first.
	n := 0
	end := len(src) - len(src)%3
	for i := 0; i < end; i += 3 {
		word := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		out[n] = alphabet[word>>18&0x3f]
		out[n+1] = alphabet[word>>12&0x3f]
		out[n+2] = alphabet[word>>6&0x3f]
		out[n+3] = alphabet[word&0x3f]
		n += 4
	}

	switch len(src) - end {
	case 1:
		// 8 bits left: two symbols cover them (low bits zero), then "==".
		out[n] = alphabet[src[end]>>2]
		out[n+1] = alphabet[(src[end]&0x03)<<4]
		out[n+2] = '='
		out[n+3] = '='
	case 2:
		// 16 bits left: three symbols cover them, then "=".
		out[n] = alphabet[src[end]>>2]
		out[n+1] = alphabet[(src[end]&0x03)<<4|src[end+1]>>4]
		out[n+2] = alphabet[(src[end+1]&0x0f)<<2]
		out[n+3] = '='
	}

	return string(out)
}

// Decode converts Base64 text to the bytes it encodes.
//
// It is deliberately lenient: trailing '=' padding and trailing whitespace
// are ignored (whether or not the padding is structurally required),
// whitespace between symbols is skipped, and symbols from the standard and
// URL-safe alphabets are accepted interchangeably. Any other byte, or a
// final group of exactly one symbol, fails with an error wrapping
// ErrInvalidInput. On failure no partial output is returned.
func Decode(s string) ([]byte, error) {
	// Scan backward past the trailing run of padding and whitespace; those
	// characters carry no bits.
	limit := len(s)
	for limit > 0 {
		c := s[limit-1]
		if c != '=' && c != '\n' && c != '\r' && c != ' ' && c != '\t' {
			break
		}
		limit--
	}

	// Each significant character carries 6 bits. Whitespace inside the
	// effective range makes this an overestimate; the result is trimmed
	// below.
	out := make([]byte, limit*6/8)
	outCount := 0
	inCount := 0

	var word uint32
	for pos := 0; pos < limit; pos++ {
		c := s[pos]

		var bits uint32
		switch {
		case c >= 'A' && c <= 'Z':
			bits = uint32(c - 'A')
		case c >= 'a' && c <= 'z':
			bits = uint32(c-'a') + 26
		case c >= '0' && c <= '9':
			bits = uint32(c-'0') + 52
		case c == '+' || c == '-':
			bits = 62
		case c == '/' || c == '_':
			bits = 63
		case c == '\n' || c == '\r' || c == ' ' || c == '\t':
			continue
		default:
			return nil, fmt.Errorf("%w: unexpected byte %q at offset %d", ErrInvalidInput, c, pos)
		}

		// Append this character's 6 bits to the rolling word. Every 4th
		// symbol completes 24 bits; emit them as 3 bytes.
		word = word<<6 | bits
		inCount++
		if inCount%4 == 0 {
			out[outCount] = byte(word >> 16)
			out[outCount+1] = byte(word >> 8)
			out[outCount+2] = byte(word)
			outCount += 3
		}
	}

	switch inCount % 4 {
	case 1:
		// A lone symbol is 6 bits, which is not a whole byte.
		return nil, fmt.Errorf("%w: truncated group of 1 symbol", ErrInvalidInput)
	case 2:
		// Two symbols carry 12 bits; the top 8 are a byte.
		word <<= 12
		out[outCount] = byte(word >> 16)
		outCount++
	case 3:
		// Three symbols carry 18 bits; the top 16 are two bytes.
		word <<= 6
		out[outCount] = byte(word >> 16)
		out[outCount+1] = byte(word >> 8)
		outCount += 2
	}

	return out[:outCount], nil
}

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

// Package base64 implements the Base64 binary-to-text encoding of RFC 4648
// with a strict encoder and a permissive decoder.
//
// Encode and EncodeURL produce canonical output: the standard or the
// URL-safe alphabet respectively, always padded with '=' to a multiple of
// four characters.
//
// Decode accepts a superset of what either encoder produces. Symbols from
// both alphabets are mapped interchangeably, embedded whitespace ('\n',
// '\r', ' ', '\t') is skipped, and trailing padding is optional. Because of
// this leniency, Decode(Encode(b)) always returns b, but Encode(Decode(s))
// need not reproduce s.
//
// Both directions are pure, allocation-per-call transforms with no shared
// state, so they are safe for concurrent use.
package base64

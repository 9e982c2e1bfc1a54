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
	"fmt"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
)

// TestEncodedLen tests the encoded length of an input of a given size in
// a few hand-verified cases.
func TestEncodedLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dataLen    int
		encodedLen int
	}{
		{dataLen: 0, encodedLen: 0},
		{dataLen: 1, encodedLen: 4},
		{dataLen: 2, encodedLen: 4},
		{dataLen: 3, encodedLen: 4},
		{dataLen: 4, encodedLen: 8},
		{dataLen: 6, encodedLen: 8},
		{dataLen: 7, encodedLen: 12},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(fmt.Sprintf("%d --> %d", tt.dataLen, tt.encodedLen), func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.encodedLen, EncodedLen(tt.dataLen)); diff != "" {
				t.Errorf("unexpected diff (-want +got): %s", diff)
			}
		})
	}
}

// TestDecodedLen tests the decoded-length upper bound in a few
// hand-verified cases. DecodedLen is a bound, not an exact count, because
// input characters may be whitespace or padding.
func TestDecodedLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		textLen    int
		decodedLen int
	}{
		{textLen: 0, decodedLen: 0},
		{textLen: 1, decodedLen: 0},
		{textLen: 2, decodedLen: 1},
		{textLen: 3, decodedLen: 2},
		{textLen: 4, decodedLen: 3},
		{textLen: 5, decodedLen: 3},
		{textLen: 8, decodedLen: 6},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(fmt.Sprintf("%d --> %d", tt.textLen, tt.decodedLen), func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.decodedLen, DecodedLen(tt.textLen)); diff != "" {
				t.Errorf("unexpected diff (-want +got): %s", diff)
			}
		})
	}
}

// TestEncodedLenLaw is a property-based test that Encode's actual output
// length always matches EncodedLen.
func TestEncodedLenLaw(t *testing.T) {
	t.Parallel()

	law := func(b []byte) bool {
		return len(Encode(b)) == EncodedLen(len(b))
	}
	if err := quick.Check(law, nil); err != nil {
		t.Error(err)
	}
}

// TestDecodedLenBound is a property-based test that Decode never produces
// more bytes than DecodedLen promises for the input length, whitespace
// included.
func TestDecodedLenBound(t *testing.T) {
	t.Parallel()

	bound := func(b []byte) bool {
		enc := "  " + Encode(b) + "\n"
		got, err := Decode(enc)
		if err != nil {
			return false
		}
		return len(got) <= DecodedLen(len(enc))
	}
	if err := quick.Check(bound, nil); err != nil {
		t.Error(err)
	}
}

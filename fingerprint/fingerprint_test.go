// fingerprint_test.go: unit tests and benchmarks for key fingerprints
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package fingerprint

import (
	"math"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		input string
	}{
		{""},
		{"a"},
		{"test"},
		{"hello world"},
		{"unicode: 你好世界"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if String(tt.input) != String(tt.input) {
				t.Errorf("String(%q) is not deterministic", tt.input)
			}
			if String(tt.input) != Bytes([]byte(tt.input)) {
				t.Errorf("String(%q) != Bytes(%q)", tt.input, tt.input)
			}
		})
	}
}

func TestString_KnownValue(t *testing.T) {
	// xxhash64 of the empty input with seed 0
	const want uint64 = 0xef46db3751d8e999
	if got := String(""); got != want {
		t.Errorf("String(\"\") = %#x, want %#x", got, want)
	}
}

func TestString_Distinct(t *testing.T) {
	if String("string1") == String("string2") {
		t.Error("distinct short strings should not collide")
	}
}

func TestXXH3(t *testing.T) {
	// XXH3 64-bit of the empty input with seed 0
	const empty = 0x2d06800538d394c2
	if got := XXH3String(""); got != empty {
		t.Errorf("XXH3String(\"\") = %#x, want %#x", got, empty)
	}

	long := "https://example.com/api/v1/users/42?fields=name,email&expand=roles"
	if XXH3String(long) != XXH3Bytes([]byte(long)) {
		t.Error("XXH3String and XXH3Bytes disagree")
	}
	if XXH3String(long) == String(long) {
		t.Error("XXH3 and xxhash64 should not agree")
	}
}

func TestUint64(t *testing.T) {
	for _, v := range []uint64{0, 1, 42, math.MaxUint64} {
		if got := Uint64(v); got != v {
			t.Errorf("Uint64(%d) = %d", v, got)
		}
	}
}

func TestFloat64(t *testing.T) {
	if Float64(0.0) == Float64(math.Copysign(0, -1)) {
		t.Error("0.0 and -0.0 should have different fingerprints")
	}
	if got, want := Float64(1.0), uint64(0x3ff0000000000000); got != want {
		t.Errorf("Float64(1.0) = %#x, want %#x", got, want)
	}
}

func BenchmarkString(b *testing.B) {
	keys := []string{
		"short",
		"medium-length-key",
		"this-is-a-very-long-key-for-testing-hash-performance",
	}

	for _, key := range keys {
		b.Run(key, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				String(key)
			}
		})
	}
}

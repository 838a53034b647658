package utils

import "testing"

func TestNormalizeHex(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0xABCDEF", "0xabcdef"},
		{"0XABCDEF", "0xabcdef"},
		{"abcdef", "0xabcdef"},
		{"  0xAbCd  ", "0xabcd"},
	}
	for _, c := range cases {
		if got := NormalizeHex(c.in); got != c.want {
			t.Fatalf("NormalizeHex(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHexEqual(t *testing.T) {
	if !HexEqual("0xAA", "aa") {
		t.Fatal("prefix and casing must not matter")
	}
	if HexEqual("0xaa", "0xab") {
		t.Fatal("different values must not compare equal")
	}
}

func TestDecodeHexRejectsGarbage(t *testing.T) {
	if _, err := DecodeHex("0xzz"); err == nil {
		t.Fatal("expected error for non-hex input")
	}
}

package utils

import "testing"

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(4)
	if len(code) != 4 {
		t.Fatalf("len(%q) = %d, want 4", code, len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("code %q contains a non-digit", code)
		}
	}
	if GenerateCode(0) != "" {
		t.Fatal("zero length should yield an empty code")
	}
	if GenerateCode(-3) != "" {
		t.Fatal("negative length should yield an empty code")
	}
}

package naming

import "testing"

func TestDeterministicSuffixStability(t *testing.T) {
	s1 := DeterministicSuffix("funcops", "notify")
	s2 := DeterministicSuffix("funcops", "notify")
	if s1 != s2 {
		t.Fatalf("suffix not stable: %s vs %s", s1, s2)
	}
	if len(s1) != 6 {
		t.Fatalf("expected suffix length 6, got %d", len(s1))
	}
	if s1 == DeterministicSuffix("funcops", "other") {
		t.Fatalf("different stacks must not share a suffix")
	}
}

func TestRandomSuffixShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 16; i++ {
		s, err := RandomSuffix()
		if err != nil {
			t.Fatalf("RandomSuffix: %v", err)
		}
		if len(s) != SuffixLength {
			t.Fatalf("expected length %d, got %d (%q)", SuffixLength, len(s), s)
		}
		for _, r := range s {
			if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				t.Fatalf("suffix %q contains invalid character %q", s, r)
			}
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Fatalf("random suffixes look constant: %v", seen)
	}
}

func TestValidateStackName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"notify", false},
		{"notify-prod", false},
		{"a", false},
		{"", true},
		{"Notify", true},
		{"-notify", true},
		{"notify-", true},
		{"way-too-long-stack-name-exceeding-the-limit", true},
	}
	for _, tt := range tests {
		err := ValidateStackName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStackName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

package spell

import "testing"

func TestTransferCasingHelper(t *testing.T) {
	tests := []struct {
		phrase string
		term   string
		want   string
	}{
		// equal lengths map character by character
		{"Hello", "hallo", "Hallo"},
		{"HELLO", "hallo", "HALLO"},
		{"heLLo", "hallo", "haLLo"},
		{"I", "i", "I"},
		// length-changing edits keep casing along the common affixes
		{"Stream", "steam", "Steam"},
		{"StreaM", "steam", "SteaM"},
		{"STREAM", "steam", "STEAM"},
		{"Pip", "pips", "Pips"},
		// already-lowercase phrases leave the term untouched
		{"stream", "steam", "steam"},
	}
	for _, tc := range tests {
		t.Run(tc.phrase, func(t *testing.T) {
			if got := transferCasing(tc.phrase, tc.term); got != tc.want {
				t.Errorf("transferCasing(%q, %q) = %q; want %q", tc.phrase, tc.term, got, tc.want)
			}
		})
	}
}

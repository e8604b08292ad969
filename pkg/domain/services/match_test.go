package services

import "testing"

func TestMatchName(t *testing.T) {
	testCases := []struct {
		name      string
		query     string
		candidate string
		aliases   []string
		expected  MatchKind
	}{
		{"exact", "Lamp", "Lamp", nil, MatchExact},
		{"exact case insensitive", "lamp", "LAMP", nil, MatchExact},
		{"alias", "Desk Lamp", "Lamp", []string{"Desk Lamp"}, MatchAlias},
		{"query contains candidate", "Lamp Deluxe", "Lamp", nil, MatchSubstring},
		{"candidate contains query", "Lamp", "Lamp Deluxe", nil, MatchSubstring},
		{"alias substring", "Moon", "Lamp", []string{"Moon Lamp"}, MatchSubstring},
		{"no match", "Vase", "Lamp", []string{"Desk Lamp"}, MatchNone},
		{"empty query", "", "Lamp", nil, MatchNone},
		{"empty candidate", "Lamp", "", nil, MatchNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchName(tc.query, tc.candidate, tc.aliases)
			if got != tc.expected {
				t.Errorf("MatchName(%q, %q, %v) = %s, expected %s",
					tc.query, tc.candidate, tc.aliases, got, tc.expected)
			}
		})
	}
}

func TestColorsMatch(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected bool
	}{
		{"Black", "black", true},
		{"Matte Black", "Black", true},
		{"Black", "Matte Black", true},
		{"Blue", "Red", false},
		{"", "Black", false},
		{"Black", "", false},
	}

	for _, tc := range testCases {
		if got := ColorsMatch(tc.a, tc.b); got != tc.expected {
			t.Errorf("ColorsMatch(%q, %q) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

package repositories

import (
	"encoding/json"
	"testing"
)

func TestJsonbMember(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"recruiter", `["recruiter"]`},
		{"user@example.com", `["user@example.com"]`},
		// Values with JSON metacharacters must stay a valid one-element array,
		// since the fragment is spliced into containment and append
		// expressions.
		{`o"hara@example.com`, `["o\"hara@example.com"]`},
	}

	for _, tc := range cases {
		got := jsonbMember(tc.value)
		if got != tc.want {
			t.Errorf("jsonbMember(%q) = %s, want %s", tc.value, got, tc.want)
		}

		var decoded []string
		if err := json.Unmarshal([]byte(got), &decoded); err != nil {
			t.Errorf("jsonbMember(%q) is not valid JSON: %v", tc.value, err)
			continue
		}
		if len(decoded) != 1 || decoded[0] != tc.value {
			t.Errorf("jsonbMember(%q) round-trips to %v", tc.value, decoded)
		}
	}
}

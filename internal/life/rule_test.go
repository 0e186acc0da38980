package life

import "testing"

func TestParseRuleConway(t *testing.T) {
	r, err := ParseRule("23/3")
	if err != nil {
		t.Fatalf("ParseRule(23/3): %v", err)
	}
	for n := 0; n <= 9; n++ {
		wantSurvive := n == 2 || n == 3
		if r.Survives(n) != wantSurvive {
			t.Fatalf("Survives(%d) = %v, want %v", n, r.Survives(n), wantSurvive)
		}
		wantBirth := n == 3
		if r.Born(n) != wantBirth {
			t.Fatalf("Born(%d) = %v, want %v", n, r.Born(n), wantBirth)
		}
	}
}

func TestParseRuleInvalid(t *testing.T) {
	bad := []string{"", "garbage", "23", "/3", "23/", "2a/3", "23/3x", "2/3/4", "/"}
	for _, s := range bad {
		if _, err := ParseRule(s); err == nil {
			t.Fatalf("ParseRule(%q) accepted malformed input", s)
		}
	}
}

func TestRuleString(t *testing.T) {
	r, err := ParseRule("32/3")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.String(); got != "23/3" {
		t.Fatalf("String() = %q, want %q", got, "23/3")
	}
}

func TestSetRuleRetainsPriorOnError(t *testing.T) {
	g := NewGrid(8, 8, nil)
	g.SetRule("125/36")
	want := g.Rule().String()

	for _, s := range []string{"", "garbage", "23", "12//3"} {
		g.SetRule(s)
		if got := g.Rule().String(); got != want {
			t.Fatalf("SetRule(%q) changed rule to %q, want %q retained", s, got, want)
		}
	}

	g.SetRule("23/3")
	if got := g.Rule().String(); got != "23/3" {
		t.Fatalf("valid SetRule not applied, rule is %q", got)
	}
}

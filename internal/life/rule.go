package life

import "fmt"

// Rule holds the survive/birth neighbor-count sets of a Life-like automaton.
// The zero value is the empty rule where every cell dies.
type Rule struct {
	survive [10]bool
	birth   [10]bool
}

// ConwayRule returns the classic "23/3" rule.
func ConwayRule() Rule {
	r, _ := ParseRule("23/3")
	return r
}

// ParseRule parses a "<survive-digits>/<birth-digits>" descriptor such as
// "23/3". Each digit names an allowed neighbor count. Both halves must be
// present and contain only digits; anything else is an error.
func ParseRule(s string) (Rule, error) {
	var r Rule
	sep := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			if sep >= 0 {
				return Rule{}, fmt.Errorf("life: rule %q has more than one separator", s)
			}
			sep = i
		}
	}
	if sep < 0 {
		return Rule{}, fmt.Errorf("life: rule %q is missing the '/' separator", s)
	}
	if sep == 0 || sep == len(s)-1 {
		return Rule{}, fmt.Errorf("life: rule %q has an empty half", s)
	}
	for i := 0; i < len(s); i++ {
		if i == sep {
			continue
		}
		c := s[i]
		if c < '0' || c > '9' {
			return Rule{}, fmt.Errorf("life: rule %q contains non-digit %q", s, c)
		}
		if i < sep {
			r.survive[c-'0'] = true
		} else {
			r.birth[c-'0'] = true
		}
	}
	return r, nil
}

// Survives reports whether an alive cell with n neighbors stays alive.
func (r Rule) Survives(n int) bool {
	return n >= 0 && n < len(r.survive) && r.survive[n]
}

// Born reports whether a dead cell with n neighbors comes alive.
func (r Rule) Born(n int) bool {
	return n >= 0 && n < len(r.birth) && r.birth[n]
}

// String reconstructs the "S/B" descriptor form of the rule.
func (r Rule) String() string {
	buf := make([]byte, 0, 21)
	for i := 0; i < 10; i++ {
		if r.survive[i] {
			buf = append(buf, byte('0'+i))
		}
	}
	buf = append(buf, '/')
	for i := 0; i < 10; i++ {
		if r.birth[i] {
			buf = append(buf, byte('0'+i))
		}
	}
	return string(buf)
}

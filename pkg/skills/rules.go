package skills

import "strings"

// Rule maps content to the skills it demonstrates.
type Rule interface {
	Match(content string) []string
}

// matcher is a boolean condition over content.
type matcher func(content string) bool

// predicateRule emits a single skill when its condition holds.
type predicateRule struct {
	skill string
	cond  matcher
}

func (r predicateRule) Match(content string) []string {
	if r.cond(content) {
		return []string{r.skill}
	}
	return nil
}

// when builds a predicate rule.
func when(skill string, cond matcher) Rule {
	return predicateRule{skill: skill, cond: cond}
}

// allOf holds when every substring is present.
func allOf(subs ...string) matcher {
	return func(content string) bool {
		for _, sub := range subs {
			if !strings.Contains(content, sub) {
				return false
			}
		}
		return true
	}
}

// anyOf holds when at least one substring is present.
func anyOf(subs ...string) matcher {
	return func(content string) bool {
		for _, sub := range subs {
			if strings.Contains(content, sub) {
				return true
			}
		}
		return false
	}
}

// none holds when no substring is present.
func none(subs ...string) matcher {
	return func(content string) bool {
		return !anyOf(subs...)(content)
	}
}

// both combines matchers with logical AND.
func both(ms ...matcher) matcher {
	return func(content string) bool {
		for _, m := range ms {
			if !m(content) {
				return false
			}
		}
		return true
	}
}

// repeated holds when any of the needles occurs more than once.
func repeated(needles ...string) matcher {
	return func(content string) bool {
		for _, needle := range needles {
			if OccursMoreThanOnce(content, needle) {
				return true
			}
		}
		return false
	}
}

// OccursMoreThanOnce reports whether needle appears again after the first
// byte of its first occurrence. Overlapping occurrences count.
func OccursMoreThanOnce(content, needle string) bool {
	first := strings.Index(content, needle)
	if first < 0 {
		return false
	}
	return strings.Contains(content[first+1:], needle)
}

// tokenSweep tests a fixed pattern for every token of a catalog and emits
// "<technology>/<name>" for each hit.
type tokenSweep struct {
	tech     Technology
	tokens   []string
	patterns func(token string) []string
	name     func(token string) string
}

func (r tokenSweep) Match(content string) []string {
	var out []string
	for _, token := range r.tokens {
		if anyOf(r.patterns(token)...)(content) {
			out = append(out, string(r.tech)+"/"+r.name(token))
		}
	}
	return out
}

// Expand splits the sweep into one rule per token.
func (r tokenSweep) Expand() []Rule {
	rules := make([]Rule, 0, len(r.tokens))
	for _, token := range r.tokens {
		rules = append(rules, tokenSweep{
			tech:     r.tech,
			tokens:   []string{token},
			patterns: r.patterns,
			name:     r.name,
		})
	}
	return rules
}

// Expander is implemented by bulk rules that can be split into independent
// single-skill rules.
type Expander interface {
	Expand() []Rule
}

func suffixed(suffix string) func(string) []string {
	return func(token string) []string { return []string{token + suffix} }
}

func prefixed(prefix string) func(string) []string {
	return func(token string) []string { return []string{prefix + token} }
}

func identity(token string) string { return token }

// catalogEntry binds a matchable token to the skill it stands for.
type catalogEntry struct {
	token string
	skill string
}

// referenceTable emits the skill of every catalog entry whose token occurs.
type referenceTable struct {
	entries []catalogEntry
}

func (r referenceTable) Match(content string) []string {
	var out []string
	for _, e := range r.entries {
		if strings.Contains(content, e.token) {
			out = append(out, e.skill)
		}
	}
	return out
}

// Expand splits the table into one rule per entry.
func (r referenceTable) Expand() []Rule {
	rules := make([]Rule, 0, len(r.entries))
	for _, e := range r.entries {
		rules = append(rules, referenceTable{entries: []catalogEntry{e}})
	}
	return rules
}

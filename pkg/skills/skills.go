// Package skills tags source-code snippets with skill identifiers.
//
// Each supported technology owns a flat rule table. A rule inspects the raw
// content with substring checks and emits zero or more identifiers of the
// form "<technology>/<name>". Rules are independent: the result of an
// extraction is the union of every rule's output, so rule order never matters.
//
// The tagger is lexical and approximate: false positives from overlapping
// substrings are expected.
package skills

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Technology identifies a rule-set. Values are case-sensitive.
type Technology string

// Supported technologies
const (
	Python  Technology = "python"
	Tkinter Technology = "tkinter"
	Sklearn Technology = "sklearn"
	Flask   Technology = "flask"
	Django  Technology = "django"
	Shell   Technology = "shell"
	Rust    Technology = "rust"
	Pygame  Technology = "pygame"
	Go      Technology = "go"
	Cpp     Technology = "cpp"
	C       Technology = "c"
	HTML    Technology = "html"
)

// UnsupportedTechnologyError is returned when no rule-set exists for a technology.
type UnsupportedTechnologyError struct {
	Technology string
}

func (e *UnsupportedTechnologyError) Error() string {
	return fmt.Sprintf("unsupported technology %q", e.Technology)
}

// IsUnsupportedTechnology reports whether err (or any error it wraps) is an
// UnsupportedTechnologyError.
func IsUnsupportedTechnology(err error) bool {
	var target *UnsupportedTechnologyError
	return errors.As(err, &target)
}

// ruleSets is the dispatch table. Adding a technology means adding a constant
// above and one entry here.
var ruleSets = sync.OnceValue(func() map[Technology][]Rule {
	return map[Technology][]Rule{
		Python:  pythonRules(),
		Tkinter: tkinterRules(),
		Sklearn: sklearnRules(),
		Flask:   flaskRules(),
		Django:  djangoRules(),
		Shell:   shellRules(),
		Rust:    rustRules(),
		Pygame:  pygameRules(),
		Go:      goRules(),
		Cpp:     cppRules(),
		C:       cRules(),
		HTML:    htmlRules(),
	}
})

// ParseTechnology validates name against the supported technologies.
func ParseTechnology(name string) (Technology, error) {
	tech := Technology(name)
	if _, ok := ruleSets()[tech]; !ok {
		return "", &UnsupportedTechnologyError{Technology: name}
	}
	return tech, nil
}

// Supported returns every technology with a rule-set, sorted by name.
func Supported() []Technology {
	techs := make([]Technology, 0, len(ruleSets()))
	for tech := range ruleSets() {
		techs = append(techs, tech)
	}
	sort.Slice(techs, func(i, j int) bool { return techs[i] < techs[j] })
	return techs
}

// Rules returns the rule table for tech. The returned slice must not be modified.
func Rules(tech Technology) ([]Rule, error) {
	rules, ok := ruleSets()[tech]
	if !ok {
		return nil, &UnsupportedTechnologyError{Technology: string(tech)}
	}
	return rules, nil
}

// Extract runs every rule of tech against content and returns the union of
// the matched skills. Empty content yields an empty set.
func Extract(tech Technology, content string) (Set, error) {
	rules, err := Rules(tech)
	if err != nil {
		return nil, err
	}

	skills := NewSet()
	if content == "" {
		return skills, nil
	}
	for _, rule := range rules {
		skills.Add(rule.Match(content)...)
	}
	return skills, nil
}

// ExtractAll is Extract over several contents, returning the union.
func ExtractAll(tech Technology, contents ...string) (Set, error) {
	rules, err := Rules(tech)
	if err != nil {
		return nil, err
	}

	skills := NewSet()
	for _, content := range contents {
		if content == "" {
			continue
		}
		for _, rule := range rules {
			skills.Add(rule.Match(content)...)
		}
	}
	return skills, nil
}

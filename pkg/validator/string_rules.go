package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NotBlank accepts strings with at least one non-whitespace character.
func NotBlank(opts ...RuleOption) *Rule {
	return NewRule(func(value any, _ *Context) bool {
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) != ""
	}, "Must not be blank.", opts...)
}

// MinLength accepts strings of at least min characters.
func MinLength(min int, opts ...RuleOption) *Rule {
	return NewRule(stringLen(func(n int) bool { return n >= min }),
		fmt.Sprintf("Must be at least %d characters long.", min), opts...)
}

// MaxLength accepts strings of at most max characters.
func MaxLength(max int, opts ...RuleOption) *Rule {
	return NewRule(stringLen(func(n int) bool { return n <= max }),
		fmt.Sprintf("Must be at most %d characters long.", max), opts...)
}

// Length accepts strings of exactly n characters.
func Length(n int, opts ...RuleOption) *Rule {
	return NewRule(stringLen(func(l int) bool { return l == n }),
		fmt.Sprintf("Must be exactly %d characters long.", n), opts...)
}

// stringLen counts runes of the NFC form, so "é" has length 1 whether it
// arrives composed or decomposed.
func stringLen(ok func(int) bool) Check {
	return func(value any, _ *Context) bool {
		s, isString := value.(string)
		return isString && ok(utf8.RuneCountInString(norm.NFC.String(s)))
	}
}

package validator

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// Email accepts RFC 5322 addresses with a dotted domain.
func Email(opts ...RuleOption) *Rule {
	return NewRule(func(value any, _ *Context) bool {
		s, ok := value.(string)
		return ok && isEmail(s)
	}, "Must be a valid email address.", opts...)
}

// URL accepts absolute URLs. When schemes are given the URL scheme must be one of them.
func URL(schemes []string, opts ...RuleOption) *Rule {
	msg := "Must be a valid URL."
	if len(schemes) > 0 {
		msg = "Must be a valid URL with scheme: " + strings.Join(schemes, ", ") + "."
	}
	return NewRule(func(value any, _ *Context) bool {
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		return len(schemes) == 0 || slices.Contains(schemes, u.Scheme)
	}, msg, opts...)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}

	// Domain must contain a dot and no empty labels
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

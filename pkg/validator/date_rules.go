package validator

import (
	"time"
)

// Date accepts strings in the given time layout, time.DateOnly when layout is empty.
func Date(layout string, opts ...RuleOption) *Rule {
	if layout == "" {
		layout = time.DateOnly
	}
	return NewRule(timeCheck(layout, nil), "Must be a date in the format "+layout+".", opts...)
}

// DateTime accepts RFC 3339 timestamps.
func DateTime(opts ...RuleOption) *Rule {
	return NewRule(timeCheck(time.RFC3339, nil), "Must be an RFC 3339 timestamp.", opts...)
}

// PastDate accepts dates in layout that lie before the current time.
func PastDate(layout string, opts ...RuleOption) *Rule {
	if layout == "" {
		layout = time.DateOnly
	}
	return NewRule(timeCheck(layout, func(t time.Time) bool {
		return t.Before(time.Now())
	}), "Must be a date in the past.", opts...)
}

func timeCheck(layout string, ok func(time.Time) bool) Check {
	return func(value any, _ *Context) bool {
		s, isString := value.(string)
		if !isString {
			return false
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return false
		}
		return ok == nil || ok(t)
	}
}

package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// wonAmount matches 5000원, 5,000원, 3만원 and 3만 원.
var wonAmount = regexp.MustCompile(`(\d[\d,]*)\s*(만)?\s*원`)

var number = regexp.MustCompile(`\d[\d,]*`)

// HasAmount reports whether text mentions a won amount.
func HasAmount(text string) bool {
	return wonAmount.MatchString(text)
}

// ParseAmount returns the first won amount in text.
func ParseAmount(text string) (int64, bool) {
	m := wonAmount.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	if m[2] != "" {
		n *= 10000
	}
	return n, true
}

// ParseNumber returns the first run of digits in text, ignoring thousands separators.
func ParseNumber(text string) (int64, bool) {
	m := number.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(m, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// StripAmounts removes every won amount from text.
func StripAmounts(text string) string {
	return strings.TrimSpace(wonAmount.ReplaceAllString(text, ""))
}

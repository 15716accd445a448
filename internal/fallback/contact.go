package fallback

import (
	"regexp"
	"strings"

	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/rules"
)

var (
	phonePattern = regexp.MustCompile(`01[0-9][-\s]?\d{4}[-\s]?\d{4}`)
	nameToken    = regexp.MustCompile(`[가-힣]{2,4}`)
	nameBefore   = regexp.MustCompile(`([가-힣]{2,4})\s*$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

type contactExtractor struct {
	fallbackName string
}

func newContactExtractor(r *rules.Rules) *contactExtractor {
	return &contactExtractor{fallbackName: r.DefaultContact}
}

// extract builds a contact from the first mobile number in text. The name is the
// Hangul word right before the number, else the first Hangul word anywhere.
func (c *contactExtractor) extract(text string) (model.Contact, bool) {
	loc := phonePattern.FindStringIndex(text)
	if loc == nil {
		return model.Contact{}, false
	}
	raw := text[loc[0]:loc[1]]

	name := c.fallbackName
	if m := nameBefore.FindStringSubmatch(text[:loc[0]]); m != nil {
		name = m[1]
	} else if first := nameToken.FindString(text); first != "" {
		name = first
	}

	return model.Contact{
		Name:  name,
		Phone: normalizePhone(raw),
		Group: model.DefaultGroup,
	}, true
}

// normalizePhone formats an 11-digit mobile number as DDD-DDDD-DDDD.
func normalizePhone(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) != 11 {
		return strings.TrimSpace(raw)
	}
	return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
}

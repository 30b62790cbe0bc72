package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"misfitpups/internal/domain"
)

const maxQueryRunes = 50

var (
	reQ    = regexp.MustCompile(`^[\p{L}\p{N} _'’&./@+-]+$`)
	reSlug = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Q validates a free-text filter value. An empty (or all-space) value is
// valid and means "no constraint". Overlong input is truncated.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if utf8.RuneCountInString(s) > maxQueryRunes {
		s = strings.TrimSpace(string([]rune(s)[:maxQueryRunes]))
	}
	return s, reQ.MatchString(s)
}

// PuppyStatus accepts "" (any) or one of the listing states.
func PuppyStatus(s string) (domain.PuppyStatus, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	for _, st := range domain.PuppyStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// ReviewStatus accepts "" (any) or one of the review states.
func ReviewStatus(s string) (domain.ReviewStatus, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	for _, st := range domain.ReviewStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func Slug(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reSlug.MatchString(s)
}

// ID validates a record identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

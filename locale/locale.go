// Package locale normalizes locale identifiers and resolves the weekday a
// calendar week starts on.
package locale

import (
	"log/slog"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/language"
)

// Default is used when no usable locale is supplied.
const Default = "en-US"

// known lists locales offered as suggestions when an invalid one is given.
var known = []string{
	"ar-EG", "ar-SA", "de-DE", "en-AU", "en-CA", "en-GB", "en-IN", "en-US",
	"es-ES", "es-MX", "fr-CA", "fr-FR", "he-IL", "hi-IN", "id-ID", "it-IT",
	"ja-JP", "ko-KR", "nl-NL", "pl-PL", "pt-BR", "pt-PT", "ru-RU", "sv-SE",
	"th-TH", "tr-TR", "zh-CN", "zh-TW",
}

// Normalize returns a canonical form of raw. An underscore separator is
// accepted ("en_GB"). Empty input yields Default silently; unusable input is
// reported once on logger and also yields Default. A well-formed region
// subtag that is not an ISO 3166 code is kept as given, so "en-EN" survives.
func Normalize(component, raw string, logger *slog.Logger) string {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "_", "-"))
	if raw == "" {
		return Default
	}
	if tag, err := language.Parse(raw); err == nil {
		return tag.String()
	}
	if base, region, ok := splitTag(raw); ok {
		if b, err := language.ParseBase(base); err == nil {
			if region == "" {
				return b.String()
			}
			return b.String() + "-" + region
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{"component", component, "locale", raw, "fallback", Default}
	if s := suggest(raw); s != "" {
		attrs = append(attrs, "suggestion", s)
	}
	logger.Warn("invalid locale provided, falling back to default", attrs...)
	return Default
}

// splitTag splits "ll" or "ll-RR" shaped input, uppercasing the region.
func splitTag(raw string) (base, region string, ok bool) {
	parts := strings.Split(raw, "-")
	if len(parts) > 2 || !isLetters(parts[0], 2, 3) {
		return "", "", false
	}
	if len(parts) == 2 {
		if !isLetters(parts[1], 2, 2) {
			return "", "", false
		}
		region = strings.ToUpper(parts[1])
	}
	return strings.ToLower(parts[0]), region, true
}

func isLetters(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func suggest(raw string) string {
	best, bestDist := "", -1
	upper := strings.ToUpper(raw)
	for _, k := range known {
		dist := levenshtein.ComputeDistance(upper, strings.ToUpper(k))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = k, dist
		}
	}
	if bestDist > 2 {
		return ""
	}
	return best
}

// Region returns the explicit region subtag of a normalized locale, or "".
// Inferred regions (such as US for a bare "en") are not reported.
func Region(normalized string) string {
	if tag, err := language.Parse(normalized); err == nil {
		if r, conf := tag.Region(); conf == language.Exact {
			return r.String()
		}
		return ""
	}
	if _, region, ok := splitTag(normalized); ok {
		return region
	}
	return ""
}

// StartOfWeek resolves the first day of the week. A non-nil override wins and
// is reduced modulo 7; otherwise the locale's region decides, defaulting to
// Monday.
func StartOfWeek(normalized string, override *int) time.Weekday {
	if override != nil {
		return time.Weekday(((*override % 7) + 7) % 7)
	}
	region := Region(normalized)
	switch {
	case sundayFirst[region]:
		return time.Sunday
	case saturdayFirst[region]:
		return time.Saturday
	default:
		return time.Monday
	}
}

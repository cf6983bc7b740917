// Package timestamp converts format specifiers into date/time strings.
//
// A specifier is either one of the reserved names below or a strftime
// pattern expanded against the sampled time. Pattern syntax is never
// validated up front: unrecognized conversion specifiers pass through to
// the output unchanged.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Reserved specifier names. Anything else is treated as a pattern.
const (
	SpecISO8601      = "timestamp_iso_8601"
	SpecRFC3339      = "timestamp_rfc_3339"
	SpecRFC3339Human = "timestamp_rfc_3339_human"
	SpecRFC5322      = "timestamp_rfc_5322"
	SpecPosixTime    = "timestamp_posix_time"
)

// Layouts for the reserved timestamps, without the UTC offset suffix.
const (
	layoutISO8601 = "2006-01-02T15:04:05"
	layoutRFC5322 = "Mon, 02 Jan 2006 15:04:05"
)

// ErrInvalidSpecifier reports a specifier that cannot name any format. The
// only such specifier is the empty string; every non-empty string is either
// reserved or a pattern.
var ErrInvalidSpecifier = errors.New("invalid format specifier")

// Format renders now according to spec:
//
//	timestamp_iso_8601       2016-05-29T16:07:59+01:00
//	timestamp_rfc_3339       alias of timestamp_iso_8601
//	timestamp_rfc_3339_human 2016-05-29 16:07:59+01:00
//	timestamp_rfc_5322       Sun, 29 May 2016 16:07:59 +0100
//	timestamp_posix_time     1464534479
//	anything else            strftime expansion of the specifier
//
// Callers building a multi-entry result must sample the clock once and pass
// the same now to every call so the entries stay mutually consistent.
func Format(spec string, now time.Time) (string, error) {
	if spec == "" {
		return "", fmt.Errorf("%w: specifier is empty", ErrInvalidSpecifier)
	}

	switch spec {
	case SpecISO8601, SpecRFC3339:
		return iso8601(now), nil
	case SpecRFC3339Human:
		return strings.Replace(iso8601(now), "T", " ", 1), nil
	case SpecRFC5322:
		return now.Format(layoutRFC5322) + " " + strings.ReplaceAll(UTCOffset(now), ":", ""), nil
	case SpecPosixTime:
		return strconv.FormatInt(now.Unix(), 10), nil
	}

	return strftime.Format(spec, now), nil
}

// FormatAll renders each specifier against the same now, in order. Invalid
// specifiers are skipped and duplicate outputs are collapsed, keeping
// first-occurrence order. The result feeds the selection panel, so an
// invalid entry costs one candidate, never the whole batch.
func FormatAll(specs []string, now time.Time) []string {
	entries := make([]string, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))

	for _, spec := range specs {
		s, err := Format(spec, now)
		if err != nil {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		entries = append(entries, s)
	}

	return entries
}

// UTCOffset renders the local-vs-UTC offset of now as a signed HH:MM string:
// "+01:00", "-05:00", "+05:30", and "+00:00" when local time equals UTC.
// Offsets are always below 24h, so hours and minutes suffice.
func UTCOffset(now time.Time) string {
	_, offset := now.Zone()

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, offset%3600/60)
}

func iso8601(now time.Time) string {
	return now.Format(layoutISO8601) + UTCOffset(now)
}

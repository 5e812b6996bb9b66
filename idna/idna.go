// Package idna applies the punycode codec to dotted domain names, converting
// individual labels to and from their "xn--"-prefixed ASCII-compatible form.
//
// Labels are converted independently; no length limits or character-repertoire
// rules are enforced. Callers needing full IDNA semantics (normalization,
// bidi rules, mapping of dot variants) should layer them on top.
package idna

import (
	"fmt"
	"strings"

	"github.com/npillmayer/punycode"
	"github.com/npillmayer/schuko/tracing"
)

// acePrefix marks a punycode-encoded label (RFC 5890, "ASCII compatible
// encoding").
const acePrefix = "xn--"

// tracer writes to trace with key 'punycode.idna'
func tracer() tracing.Trace {
	return tracing.Select("punycode.idna")
}

// ToASCII converts a domain name to its ASCII-compatible form. Labels
// containing at least one non-ASCII code point are punycode-encoded and
// prefixed with "xn--"; all-ASCII labels pass through unchanged.
func ToASCII(domain string) (string, error) {
	labels := strings.Split(domain, ".")
	for i, label := range labels {
		if isASCII(label) {
			continue
		}
		encoded, err := punycode.Encode(label)
		if err != nil {
			return "", fmt.Errorf("label %q: %w", label, err)
		}
		tracer().Debugf("label %q => %q", label, acePrefix+encoded)
		labels[i] = acePrefix + encoded
	}
	return strings.Join(labels, "."), nil
}

// ToUnicode converts a domain name from its ASCII-compatible form back to
// Unicode. Labels carrying the literal "xn--" prefix are punycode-decoded;
// all other labels pass through unchanged.
func ToUnicode(domain string) (string, error) {
	labels := strings.Split(domain, ".")
	for i, label := range labels {
		if !strings.HasPrefix(label, acePrefix) {
			continue
		}
		decoded, err := punycode.Decode(label[len(acePrefix):])
		if err != nil {
			return "", fmt.Errorf("label %q: %w", label, err)
		}
		labels[i] = decoded
	}
	return strings.Join(labels, "."), nil
}

func isASCII(s string) bool {
	for _, r := range s {
		if r >= 0x80 {
			return false
		}
	}
	return true
}

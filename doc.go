/*
Package punycode implements the Bootstring transformation described by
RFC 3492, parameterized for Punycode as used by internationalized domain
names.

Encode turns a sequence of Unicode code points into an ASCII string made of a
verbatim "basic" segment, an optional delimiter, and adaptive base-36 digit
groups encoding the non-ASCII code points together with their positions.
Decode is the exact inverse. Both directions share the bias-adaptation
arithmetic that keeps deltas short; all constants are the normative ones from
the RFC.

The package performs no normalization, case folding or label-length checking.
Subpackage idna wraps the codec with the dotted-label / "xn--" convention of
domain names.

Further Reading

	https://www.rfc-editor.org/rfc/rfc3492
	https://www.rfc-editor.org/rfc/rfc5890
	https://www.unicode.org/reports/tr46/

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package punycode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'punycode'
func tracer() tracing.Trace {
	return tracing.Select("punycode")
}

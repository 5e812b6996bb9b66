package punycode

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Bootstring parameters for the Punycode profile. These are normative
// (RFC 3492, section 5); changing any of them breaks interoperability.
const (
	base        int32 = 36
	tMin        int32 = 1
	tMax        int32 = 26
	skew        int32 = 38
	damp        int32 = 700
	initialBias int32 = 72
	initialN    int32 = 128

	delimiter = '-'

	maxInt32 int32 = 1<<31 - 1
)

var (
	// ErrMalformedInput is returned by Decode when the extended segment is
	// exhausted mid-digit-group or contains a byte outside the base-36
	// alphabet.
	ErrMalformedInput = errors.New("malformed punycode input")

	// ErrOverflow is returned when an input would need wider integers to
	// process. Arithmetic is guarded explicitly; values never wrap silently.
	ErrOverflow = errors.New("punycode overflow: input needs wider integers to process")
)

// adapt recalculates the bias after a delta has been encoded or decoded.
// numPoints is the number of code points handled so far, including the one
// just processed.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > (base-tMin)*tMax/2 {
		delta /= base - tMin
		k += base
	}
	return k + (base-tMin+1)*delta/(delta+skew)
}

// threshold clamps k-bias into [tMin,tMax].
func threshold(k, bias int32) int32 {
	if k <= bias {
		return tMin
	}
	if k >= bias+tMax {
		return tMax
	}
	return k - bias
}

// basicToDigit maps a byte of the extended segment to its digit value.
// ok is false for bytes outside the base-36 alphabet.
func basicToDigit(b byte) (digit int32, ok bool) {
	switch {
	case b >= '0' && b <= '9':
		return int32(b-'0') + 26, true
	case b >= 'A' && b <= 'Z':
		return int32(b - 'A'), true
	case b >= 'a' && b <= 'z':
		return int32(b - 'a'), true
	}
	return 0, false
}

// digitToBasic maps a digit value to its basic code point. Output is always
// lowercase; the profile does not use the uppercase flag of RFC 3492.
func digitToBasic(digit int32) byte {
	if digit < 26 {
		return 'a' + byte(digit)
	}
	return '0' + byte(digit) - 26
}

// EncodeRunes converts a sequence of Unicode code points into its Bootstring
// form. A sequence without any non-basic code point is returned unchanged,
// with no delimiter appended.
func EncodeRunes(input []rune) (string, error) {
	output := make([]byte, 0, len(input))
	nonBasic := 0
	for _, r := range input {
		if r < initialN {
			output = append(output, byte(r))
		} else {
			nonBasic++
		}
	}
	if nonBasic == 0 {
		return string(output), nil
	}
	basicLength := len(output)
	if basicLength > 0 {
		output = append(output, delimiter)
	}

	n, delta, bias := initialN, int32(0), initialBias
	handled := basicLength
	for remaining := nonBasic; remaining > 0; {
		// smallest code point >= n decides the next encoding round
		m := maxInt32
		for _, r := range input {
			if r >= n && r < m {
				m = r
			}
		}
		handledPlusOne := int32(handled + 1)
		if m-n > (maxInt32-delta)/handledPlusOne {
			return "", ErrOverflow
		}
		delta += (m - n) * handledPlusOne
		n = m
		for _, r := range input {
			if r < n {
				if delta == maxInt32 {
					return "", ErrOverflow
				}
				delta++
				continue
			}
			if r > n {
				continue
			}
			q := delta
			for k := base; ; k += base {
				t := threshold(k, bias)
				if q < t {
					break
				}
				output = append(output, digitToBasic(t+(q-t)%(base-t)))
				q = (q - t) / (base - t)
			}
			output = append(output, digitToBasic(q))
			bias = adapt(delta, int32(handled+1), handled == basicLength)
			delta = 0
			handled++
			remaining--
		}
		delta++
		n++
	}
	return string(output), nil
}

// Encode converts the code points of s into their Bootstring form.
// See EncodeRunes.
func Encode(s string) (string, error) {
	return EncodeRunes([]rune(s))
}

// DecodeRunes converts a Bootstring-encoded ASCII string back into the
// sequence of Unicode code points it represents. Everything up to the last
// delimiter is the basic segment and is copied verbatim; the remainder is
// decoded as variable-length digit groups with positional insertion.
func DecodeRunes(s string) ([]rune, error) {
	pos := 0
	end := strings.LastIndexByte(s, delimiter)
	output := make([]rune, 0, len(s))
	for ; pos < end; pos++ {
		b := s[pos]
		if b >= 0x80 {
			tracer().Debugf("non-ASCII byte 0x%02x in basic segment", b)
			return nil, ErrMalformedInput
		}
		output = append(output, rune(b))
	}
	if end >= 0 {
		pos = end + 1 // skip the delimiter itself
	}

	i, n, bias := int32(0), initialN, initialBias
	for pos < len(s) {
		oldi, w := i, int32(1)
		for k := base; ; k += base {
			if pos == len(s) {
				tracer().Debugf("digit group truncated at byte %d", pos)
				return nil, ErrMalformedInput
			}
			digit, ok := basicToDigit(s[pos])
			pos++
			if !ok {
				tracer().Debugf("byte 0x%02x outside digit alphabet", s[pos-1])
				return nil, ErrMalformedInput
			}
			if digit > (maxInt32-i)/w {
				return nil, ErrOverflow
			}
			i += digit * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > maxInt32/(base-t) {
				return nil, ErrOverflow
			}
			w *= base - t
		}
		out := int32(len(output) + 1)
		bias = adapt(i-oldi, out, oldi == 0)
		if i/out > maxInt32-n {
			return nil, ErrOverflow
		}
		n += i / out
		i %= out
		if n > utf8.MaxRune {
			return nil, ErrOverflow
		}
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = n
		i++
	}
	return output, nil
}

// Decode converts a Bootstring-encoded ASCII string back into the Unicode
// string it represents. See DecodeRunes.
func Decode(s string) (string, error) {
	runes, err := DecodeRunes(s)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

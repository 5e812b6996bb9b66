package idna

import (
	"testing"

	"github.com/npillmayer/punycode"
	"github.com/stretchr/testify/assert"
)

func TestToASCII(t *testing.T) {
	got, err := ToASCII("münchen.de")
	assert.Nil(t, err)
	assert.Equal(t, "xn--mnchen-3ya.de", got)
}

func TestToUnicode(t *testing.T) {
	got, err := ToUnicode("xn--mnchen-3ya.de")
	assert.Nil(t, err)
	assert.Equal(t, "münchen.de", got)
}

func TestPassthrough(t *testing.T) {
	for _, domain := range []string{"example.com", "www.example.co.uk", "", "localhost"} {
		got, err := ToASCII(domain)
		assert.Nil(t, err)
		assert.Equal(t, domain, got)

		got, err = ToUnicode(domain)
		assert.Nil(t, err)
		assert.Equal(t, domain, got)
	}
}

func TestMultiLabel(t *testing.T) {
	got, err := ToASCII("bücher.münchen.example")
	assert.Nil(t, err)
	assert.Equal(t, "xn--bcher-kva.xn--mnchen-3ya.example", got)

	back, err := ToUnicode(got)
	assert.Nil(t, err)
	assert.Equal(t, "bücher.münchen.example", back)
}

func TestDomainRoundTrip(t *testing.T) {
	domains := []string{
		"こんにちは.example.jp",
		"müller.bücher.de",
		"mixed.ascii-and-ünïcode.org",
	}
	for _, domain := range domains {
		ascii, err := ToASCII(domain)
		assert.Nil(t, err)
		back, err := ToUnicode(ascii)
		assert.Nil(t, err)
		assert.Equal(t, domain, back)
	}
}

func TestToUnicodeMalformed(t *testing.T) {
	_, err := ToUnicode("xn--a_b.de")
	assert.Error(t, err)
	assert.ErrorIs(t, err, punycode.ErrMalformedInput)
}

func TestNonPrefixedLabelNotDecoded(t *testing.T) {
	// a label that merely contains digits and hyphens is left alone
	got, err := ToUnicode("mnchen-3ya.de")
	assert.Nil(t, err)
	assert.Equal(t, "mnchen-3ya.de", got)
}

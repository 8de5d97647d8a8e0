package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"All New BeAT CBS", "all-new-beat-cbs"},
		{"CRF 150 L", "crf-150-l"},
		{"  Vario   160  ", "vario-160"},
		{"PCX-160 (ABS)", "pcx-160-abs"},
		{"Café Racer", "cafe-racer"},
		{"---", "item"},
		{"", "item"},
		{"日本語", "item"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in, 100), "input: %q", c.in)
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify("super long product name that keeps going", 10)
	assert.LessOrEqual(t, len(got), 10)
	assert.NotEqual(t, "-", got[len(got)-1:])
}

func TestTrimForSuffix(t *testing.T) {
	// base+suffix harus muat di maxLen
	got := trimForSuffix("abcdefghij", "-2", 10)
	assert.Equal(t, "abcdefgh", got)
	assert.LessOrEqual(t, len(got)+2, 10)

	// base pendek tidak dipotong
	assert.Equal(t, "beat", trimForSuffix("beat", "-2", 100))

	// suffix menghabiskan budget → fallback "x"
	assert.Equal(t, "x", trimForSuffix("abc", "-123456", 5))
}

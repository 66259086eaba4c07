package domain

import (
	"testing"
)

// FuzzParseQuantity checks that parsing never panics on arbitrary input and
// that accepted positive quantities stay positive after a round-trip.
func FuzzParseQuantity(f *testing.F) {
	f.Add("")
	f.Add("6.0")
	f.Add("-0")
	f.Add("1e3")
	f.Add("0.0001")
	f.Add("'; DROP TABLE feeds;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("1e999999999")
	f.Add("1e-999999999")
	f.Add("999999999.999")
	f.Add("1000000000")
	f.Add("9.99999e8")

	f.Fuzz(func(t *testing.T, input string) {
		d, err := ParsePositiveQuantity(input)
		if err != nil {
			return
		}
		if !d.IsPositive() {
			t.Errorf("accepted non-positive quantity %q", input)
		}
		if d.GreaterThan(MaxQuantity) {
			t.Errorf("accepted out-of-range quantity %q", input)
		}
		again, err := ParsePositiveQuantity(d.String())
		if err != nil {
			t.Errorf("round-trip failed for %q: %v", d.String(), err)
			return
		}
		if !again.Equal(d) {
			t.Errorf("round-trip changed %s to %s", d, again)
		}
	})
}

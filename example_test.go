package adc_test

import (
	"fmt"

	"github.com/woozymasta/adc"
)

func ExampleDecompress() {
	// Literal "A", then a match of length 3 at distance 1.
	span := []byte{0x80, 'A', 0x00, 0x00}

	out, err := adc.Decompress(span, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(string(out))
	// Output: AAAA
}

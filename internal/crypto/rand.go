package crypto

import (
	"crypto/rand"
	"io"
)

// randReader is the random source used for nonces and encapsulation seeds.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

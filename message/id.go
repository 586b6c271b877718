package message

import (
	"crypto/rand"
	"fmt"
	mrand "math/rand"
	"sync"
)

// IDGenerator provides the unique identifiers used for the multipart boundary
// and the Message-ID field.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f.
func (f IDGeneratorFunc) NewID() string {
	return f()
}

// RandomID is the default IDGenerator. It returns random identifiers in the
// form of a version 4 UUID: 32 lowercase hex digits grouped 8-4-4-4-12 with the
// version nibble set to 4 and the variant nibble one of 8, 9, a or b.
var RandomID IDGenerator = IDGeneratorFunc(NewRandomID)

// NewRandomID returns a new random identifier as described for RandomID. The
// identifier is unique with high probability, but collisions are not checked.
func NewRandomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is not fatal here
		for i := range b {
			b[i] = byte(mrand.Intn(256))
		}
	}

	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// SequentialIDs returns an IDGenerator that hands out the given identifiers in
// order and then repeats the last one. It is meant for tests that need stable
// output. The generator is safe for concurrent use, but goroutines sharing it
// receive the identifiers in whatever order they call it.
func SequentialIDs(ids ...string) IDGenerator {
	if len(ids) == 0 {
		ids = []string{"00000000-0000-4000-8000-000000000000"}
	}

	var (
		mu sync.Mutex
		i  int
	)
	return IDGeneratorFunc(func() string {
		mu.Lock()
		defer mu.Unlock()

		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id
	})
}

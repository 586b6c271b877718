package message_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/addr"
	"github.com/zostay/go-eml/message"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewRandomID(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := message.NewRandomID()
		assert.Regexp(t, uuidV4, id)
		assert.False(t, seen[id])
		seen[id] = true
	}

	assert.Regexp(t, uuidV4, message.RandomID.NewID())
}

func TestSequentialIDs(t *testing.T) {
	t.Parallel()

	ids := message.SequentialIDs("a", "b")
	assert.Equal(t, "a", ids.NewID())
	assert.Equal(t, "b", ids.NewID())
	assert.Equal(t, "b", ids.NewID())

	assert.Regexp(t, uuidV4, message.SequentialIDs().NewID())
}

func TestSequentialIDs_SharedBuilder(t *testing.T) {
	t.Parallel()

	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	b := message.NewBuilder(message.WithIDGenerator(message.SequentialIDs(ids...)))

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		bound = map[string]int{}
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := b.Build(&message.Request{To: addr.PlainList("a@x.com")})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			bound[res.Boundary]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	// four builds draw eight ids; each boundary comes from a distinct id
	assert.Len(t, bound, 4)
}

func TestIDGeneratorFunc(t *testing.T) {
	t.Parallel()

	var gen message.IDGenerator = message.IDGeneratorFunc(func() string { return "fixed" })
	assert.Equal(t, "fixed", gen.NewID())
}

package ulid

import (
	"io"
	"math/rand"
	"regexp"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropy     io.Reader
	entropyOnce sync.Once
	generator   = DefaultGenerator
)

// DefaultEntropy returns a reader that generates ULID entropy.
func DefaultEntropy() io.Reader {
	entropyOnce.Do(func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))

		entropy = &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rng, 0),
		}
	})
	return entropy
}

var ulidRegex = regexp.MustCompile(`^[0123456789ABCDEFGHJKMNPQRSTVWXYZ]{26}$`)

// ValidID reports whether id is a well-formed ULID in Crockford's Base32.
// Block ids restored from external payloads are regenerated when this
// returns false.
func ValidID(id string) bool {
	_, err := ulid.Parse(id)

	return err == nil && ulidRegex.MatchString(id)
}

// GenerateID returns a new unique block id.
func GenerateID() string {
	return generator()
}

func DefaultGenerator() string {
	entropy := DefaultEntropy()
	ts := ulid.Timestamp(time.Now())
	return ulid.MustNew(ts, entropy).String()
}

func ResetGenerator() {
	generator = DefaultGenerator
}

// MockGenerator pins GenerateID to a fixed value for deterministic tests.
func MockGenerator(mockValue string) {
	generator = func() string {
		return mockValue
	}
}

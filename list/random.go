package list

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"

	"github.com/hasbyte1/go-immutable/arr"
)

// random is the process-wide generator behind Shuffle and Random. It is the
// only mutable state in the package.
var random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func init() {
	random.rng = rand.New(newDefaultSource())
}

// chachaSource is a [rand.Source] that reads its output from a ChaCha20
// keystream.
type chachaSource struct {
	stream *chacha20.Cipher
	buf    [8]byte
}

func newChaChaSource(key [chacha20.KeySize]byte) *chachaSource {
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// Key and nonce lengths are fixed above.
		panic(err)
	}
	return &chachaSource{stream: stream}
}

func newDefaultSource() *chachaSource {
	var key [chacha20.KeySize]byte
	if _, err := crand.Read(key[:]); err != nil {
		panic(err)
	}
	return newChaChaSource(key)
}

// Uint64 implements [rand.Source].
func (s *chachaSource) Uint64() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// NewSource returns a deterministic [rand.Source] for seed. Sources built
// from the same seed produce the same stream. A source is not safe for
// concurrent use.
func NewSource(seed uint64) rand.Source {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	return newChaChaSource(blake2b.Sum256(b[:]))
}

// Seed makes [List.Shuffle] and [List.Random] deterministic by installing
// NewSource(seed) as the package generator. It returns a func that restores
// the previous generator; tests typically defer it:
//
//	defer list.Seed(42)()
func Seed(seed uint64) (restore func()) {
	return SetSource(NewSource(seed))
}

// SetSource installs src as the package generator and returns a func that
// restores the previous one. A nil src installs a fresh generator keyed
// from crypto/rand.
func SetSource(src rand.Source) (restore func()) {
	if src == nil {
		src = newDefaultSource()
	}
	random.mu.Lock()
	prev := random.rng
	random.rng = rand.New(src)
	random.mu.Unlock()
	return func() {
		random.mu.Lock()
		random.rng = prev
		random.mu.Unlock()
	}
}

// Shuffle returns a new list holding the same items in uniformly random
// order. The result is not reproducible unless [Seed] was called.
func (l *List[T]) Shuffle() *List[T] {
	random.mu.Lock()
	defer random.mu.Unlock()
	return wrap(arr.Shuffle(l.items, random.rng))
}

// Random returns one uniformly selected item, or false when the list is
// empty.
func (l *List[T]) Random() (T, bool) {
	random.mu.Lock()
	defer random.mu.Unlock()
	return arr.Random(l.items, random.rng)
}

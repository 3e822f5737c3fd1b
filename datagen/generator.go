package datagen

import (
	"encoding/binary"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/saylorsolutions/testkit/internal/config"
	"github.com/saylorsolutions/testkit/internal/logx"
)

// DefaultMaxAttempts is the number of candidates a phone pattern may reject before giving up.
const DefaultMaxAttempts = config.DefaultMaxAttempts

// Generator produces randomized fixture values from a single source of randomness.
//
// A Generator created with [WithSeed] or [WithSource] must not be shared between goroutines.
// The one returned from [Default] draws from the process-wide source and is safe for concurrent use.
type Generator struct {
	src         rand.Source
	rng         *rand.Rand
	faker       *gofakeit.Faker
	now         func() time.Time
	maxAttempts int
	log         *slog.Logger
}

// Option configures a [Generator] in [New].
type Option func(*Generator)

// WithSeed makes the Generator reproducible: the same seed yields the same sequence of values for the same calls.
// Time-based values also depend on the clock, see [WithClock].
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithSource sets the source of randomness. A nil source is ignored.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithClock sets the function used to read the current time, which bounds dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithMaxAttempts caps the rejection sampling loop for phone patterns. Values below 1 are ignored.
func WithMaxAttempts(attempts int) Option {
	return func(g *Generator) {
		if attempts > 0 {
			g.maxAttempts = attempts
		}
	}
}

// WithLogger sets a logger for diagnostics, such as rejected phone candidates at debug level.
// Nothing is logged by default.
func WithLogger(log *slog.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// globalSource draws from the concurrency safe top level functions in math/rand/v2.
type globalSource struct{}

func (globalSource) Uint64() uint64 {
	return rand.Uint64()
}

// New creates a [Generator]. Without options it uses the process-wide source, the system clock, and [DefaultMaxAttempts].
func New(opts ...Option) *Generator {
	g := &Generator{
		src:         globalSource{},
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
		log:         logx.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(g.src)
	_, shared := g.src.(globalSource)
	g.faker = gofakeit.NewFaker(g.src, shared)
	return g
}

// FromEnv creates a [Generator] configured by the TESTKIT_SEED and TESTKIT_MAX_ATTEMPTS environment variables.
// Options passed here are applied after the environment, so they take precedence.
func FromEnv(opts ...Option) *Generator {
	settings := config.Load()
	envOpts := []Option{WithMaxAttempts(settings.MaxAttempts)}
	if settings.Seeded {
		envOpts = append(envOpts, WithSeed(settings.Seed))
	}
	return New(append(envOpts, opts...)...)
}

var defaultGenerator = New()

// Default returns a shared [Generator] backed by the process-wide source.
func Default() *Generator {
	return defaultGenerator
}

// int64Range returns a uniform value in [min, max]. The caller guarantees min <= max.
func (g *Generator) int64Range(min, max int64) int64 {
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(g.rng.Uint64())
	}
	return int64(uint64(min) + g.rng.Uint64N(span+1))
}

func (g *Generator) digit() byte {
	return byte('0' + g.rng.IntN(10))
}

func (g *Generator) digits(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = g.digit()
	}
	return string(buf)
}

// Read fills p with random bytes, so a Generator can be used as an [io.Reader].
// It never returns an error.
func (g *Generator) Read(p []byte) (int, error) {
	var chunk [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(chunk[:], g.rng.Uint64())
		copy(p[i:], chunk[:])
	}
	return len(p), nil
}

// Package pushid generates push-style record identifiers: a "-" followed by
// the current time in milliseconds and a random four digit suffix.
//
// Identifiers are unique enough for seeding but not globally coordinated.
// Two calls within the same millisecond collide with probability 1/9000, so
// callers that need a run of distinct ids space the calls apart.
package pushid

import (
	"math/rand"
	"strconv"
	"time"
)

// Generator produces push ids from an injected clock and random source.
type Generator struct {
	Now  func() time.Time
	Rand *rand.Rand
}

// New returns a Generator using the wall clock and the given random source.
func New(r *rand.Rand) *Generator {
	return &Generator{Now: time.Now, Rand: r}
}

// Next returns a new identifier such as "-17325870000001234".
func (g *Generator) Next() string {
	ms := g.Now().UnixMilli()
	suffix := 1000 + g.Rand.Intn(9000)
	return "-" + strconv.FormatInt(ms, 10) + strconv.Itoa(suffix)
}

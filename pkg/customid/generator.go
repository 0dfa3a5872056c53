package customid

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var digitRuns = regexp.MustCompile(`\d+`)

// Generator renders custom item IDs from a format specification.
//
// The generator is advisory only: the rendered ID is not checked for
// uniqueness here. The database's unique key on (inventory_id, custom_id) is
// authoritative, and concurrent creators racing on a sequence element are
// expected to surface as duplicate-key violations handled by the caller.
type Generator struct {
	now func() time.Time
	rnd *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRand overrides the random source, for tests.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) { g.rnd = rnd }
}

// New creates a Generator with the real clock and a time-seeded random source.
func New(opts ...Option) *Generator {
	g := &Generator{
		now: time.Now,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders a new custom ID by processing elements strictly in order.
// lastCustomID is the custom ID of the most recently created item in the
// inventory ("" when the inventory has no items yet); it feeds the sequence
// element. Unrecognized element kinds contribute nothing.
func (g *Generator) Generate(elements []Element, lastCustomID string) string {
	var b strings.Builder

	for _, el := range elements {
		switch el.Kind {
		case KindText:
			b.WriteString(el.Value)
		case KindSequence:
			mask := el.Format
			if mask == "" {
				mask = DefaultSequenceMask
			}
			b.WriteString(g.renderSequence(lastCustomID, mask))
		case KindRandom20:
			b.WriteString(fmt.Sprintf("%05X", g.rnd.Intn(1<<20)))
		case KindRandom32:
			b.WriteString(fmt.Sprintf("%08X", g.rnd.Int63n(1<<32)))
		case KindRandom6:
			b.WriteString(fmt.Sprintf("%06d", g.rnd.Intn(1_000_000)))
		case KindRandom9:
			b.WriteString(fmt.Sprintf("%09d", g.rnd.Int63n(1_000_000_000)))
		case KindGUID:
			b.WriteString(uuid.NewString())
		case KindDatetime:
			b.WriteString(g.now().UTC().Format("20060102150405"))
		}
	}

	if b.Len() == 0 {
		return fmt.Sprintf("ITEM-%d", g.now().UnixMilli())
	}
	return b.String()
}

// renderSequence computes the next sequence value from the prior custom ID and
// pads it to the mask width. The prior value is the LAST run of digits in the
// full prior ID; this is best-effort text parsing, not an atomic counter, so
// text elements containing digits shift the result. Padding only extends,
// never clamps.
func (g *Generator) renderSequence(lastCustomID, mask string) string {
	next := NextSequence(lastCustomID)
	return fmt.Sprintf("%0*d", len(mask), next)
}

// NextSequence extracts the last digit run from the prior custom ID and
// returns its value plus one. It returns 1 when there is no prior ID or the
// prior ID contains no digits.
func NextSequence(lastCustomID string) int64 {
	if lastCustomID == "" {
		return 1
	}
	runs := digitRuns.FindAllString(lastCustomID, -1)
	if len(runs) == 0 {
		return 1
	}
	last, err := strconv.ParseInt(runs[len(runs)-1], 10, 64)
	if err != nil {
		// Digit run too long to parse as int64. Start over rather than fail.
		return 1
	}
	return last + 1
}

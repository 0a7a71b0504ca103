package lane

import (
	"fmt"
	"math/rand"
)

// SpawnContext describes the tick a spawn decision is made for.
type SpawnContext struct {
	Tick    int // Tick being computed, 1 for the first tick
	Score   int // Score before the tick
	Columns int // Grid width
}

// SpawnPolicy decides which columns receive a new obstacle at the spawn edge.
// Returning an empty slice spawns nothing; the spawn edge is still cleared.
type SpawnPolicy interface {
	NextRow(ctx SpawnContext) ([]int, error)
}

// SpawnFunc adapts a function to SpawnPolicy.
type SpawnFunc func(ctx SpawnContext) ([]int, error)

// NextRow calls f.
func (f SpawnFunc) NextRow(ctx SpawnContext) ([]int, error) {
	return f(ctx)
}

// ColumnSource picks a column in [0, n). Sources returning anything else make
// the tick fail with ErrInvalidColumn.
type ColumnSource func(n int) int

// TuningFunc returns the spawn chance and minimum gap in effect for a tick.
type TuningFunc func(ctx SpawnContext) (chance float64, minGap int)

// RandomOptions configures a RandomSpawner.
type RandomOptions struct {
	Seed       int64
	Chance     float64      // Probability of a spike row once the gap allows one (>= 1 always spawns)
	MinGap     int          // Empty rows kept between two spike rows
	StartDelay int          // Ticks with no spawns at the start of a session
	Column     ColumnSource // Column picker; nil picks uniformly with the seeded RNG
	Tuning     TuningFunc   // Overrides Chance and MinGap per tick when set
}

// RandomSpawner spawns at most one obstacle per row in a random column.
type RandomSpawner struct {
	opts    RandomOptions
	rng     *rand.Rand
	column  ColumnSource
	gap     int  // Empty rows since the last spike row
	spawned bool // Whether any spike row was produced yet
}

// NewRandomSpawner creates a spawner seeded with opts.Seed.
func NewRandomSpawner(opts RandomOptions) *RandomSpawner {
	s := &RandomSpawner{opts: opts}
	s.Reset(opts.Seed)
	return s
}

// Reset reseeds the RNG and forgets spawn history.
func (s *RandomSpawner) Reset(seed int64) {
	s.opts.Seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.column = s.opts.Column
	if s.column == nil {
		s.column = s.rng.Intn
	}
	s.gap = 0
	s.spawned = false
}

// NextRow implements SpawnPolicy.
func (s *RandomSpawner) NextRow(ctx SpawnContext) ([]int, error) {
	if ctx.Tick <= s.opts.StartDelay {
		return nil, nil
	}

	chance, minGap := s.opts.Chance, s.opts.MinGap
	if s.opts.Tuning != nil {
		chance, minGap = s.opts.Tuning(ctx)
	}

	if s.spawned && s.gap < minGap {
		s.gap++
		return nil, nil
	}
	if chance < 1 && s.rng.Float64() >= chance {
		s.gap++
		return nil, nil
	}

	col := s.column(ctx.Columns)
	if col < 0 || col >= ctx.Columns {
		return nil, fmt.Errorf("%w: generator returned %d, want [0, %d)", ErrInvalidColumn, col, ctx.Columns)
	}

	s.gap = 0
	s.spawned = true
	return []int{col}, nil
}

// PatternSpawner replays a fixed sequence of rows, one per tick, cycling when
// the sequence is exhausted. An empty pattern never spawns.
type PatternSpawner struct {
	rows [][]int
}

// NewPatternSpawner copies rows into a new spawner.
func NewPatternSpawner(rows [][]int) *PatternSpawner {
	p := &PatternSpawner{rows: make([][]int, len(rows))}
	for i, r := range rows {
		p.rows[i] = append([]int(nil), r...)
	}
	return p
}

// NextRow implements SpawnPolicy.
func (p *PatternSpawner) NextRow(ctx SpawnContext) ([]int, error) {
	if len(p.rows) == 0 {
		return nil, nil
	}
	i := (ctx.Tick - 1) % len(p.rows)
	if i < 0 {
		i += len(p.rows)
	}
	row := p.rows[i]
	for _, c := range row {
		if c < 0 || c >= ctx.Columns {
			return nil, fmt.Errorf("%w: pattern row %d has column %d, want [0, %d)", ErrInvalidColumn, i, c, ctx.Columns)
		}
	}
	return append([]int(nil), row...), nil
}

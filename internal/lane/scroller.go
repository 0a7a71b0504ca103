package lane

// Advance is the outcome of one scroll step.
type Advance struct {
	Boundary  Row   // Row arriving at the player's row, captured before the shift
	Discarded Row   // Row pushed off the grid past the player
	Spawned   []int // Columns written at the spawn edge
}

// Scroller moves the obstacle lane one row per tick. Each step captures the
// boundary row, shifts the grid toward the player and writes a new row at the
// spawn edge, in that order.
type Scroller struct {
	grid   *Grid
	policy SpawnPolicy
}

// NewScroller creates a scroller over grid. A nil policy never spawns.
func NewScroller(grid *Grid, policy SpawnPolicy) *Scroller {
	if policy == nil {
		policy = NewPatternSpawner(nil)
	}
	return &Scroller{grid: grid, policy: policy}
}

// Plan asks the policy for the next spawn row and checks it against the grid.
// It does not touch the grid.
func (s *Scroller) Plan(ctx SpawnContext) ([]int, error) {
	ctx.Columns = s.grid.Columns()
	spawn, err := s.policy.NextRow(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.grid.ValidateColumns(spawn); err != nil {
		return nil, err
	}
	return spawn, nil
}

// Apply performs one scroll step with a spawn row obtained from Plan. The grid
// is left untouched if spawn names a column outside the grid.
func (s *Scroller) Apply(spawn []int) (Advance, error) {
	if err := s.grid.ValidateColumns(spawn); err != nil {
		return Advance{}, err
	}

	var boundary Row
	if s.grid.Rows() > 1 {
		boundary = s.grid.row(PlayerRow + 1)
	}

	discarded := s.grid.Shift()
	if err := s.grid.SpawnRow(spawn); err != nil {
		return Advance{}, err
	}

	// On a single-row grid the spawn edge is the player's row.
	if boundary == nil {
		boundary = s.grid.row(PlayerRow)
	}

	return Advance{
		Boundary:  boundary,
		Discarded: discarded,
		Spawned:   append([]int(nil), spawn...),
	}, nil
}

// Step plans and applies one scroll step.
func (s *Scroller) Step(ctx SpawnContext) (Advance, error) {
	spawn, err := s.Plan(ctx)
	if err != nil {
		return Advance{}, err
	}
	return s.Apply(spawn)
}

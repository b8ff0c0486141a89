package sim

// Snapshot is a read-only copy of the simulation state, taken once per
// tick by the renderer. Mutating it has no effect on the simulation.
type Snapshot struct {
	Phase        Phase
	Score        float64
	Points       int // floor(Score), the displayed value
	HighScore    int
	Speed        float64
	GroundOffset float64
	Ticks        int
	Character    Character
	Obstacles    []Obstacle
}

// Snapshot copies the current state for external consumers.
func (s *Sim) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.spawner.obstacles))
	copy(obstacles, s.spawner.obstacles)

	return Snapshot{
		Phase:        s.phase,
		Score:        s.score,
		Points:       s.points(),
		HighScore:    s.highScore,
		Speed:        s.speed,
		GroundOffset: s.groundOffset,
		Ticks:        s.ticks,
		Character:    s.char,
		Obstacles:    obstacles,
	}
}

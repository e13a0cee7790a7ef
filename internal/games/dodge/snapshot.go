package dodge

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick       int64
	Score      int
	PlayerX    float64
	PlayerY    float64
	Enemies    int
	DotX       float64
	DotY       float64
	DotVisible bool
	GameOver   bool
	Games      int // finished sessions
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.session
	return Snapshot{
		Tick:       s.Ticks,
		Score:      s.Score,
		PlayerX:    s.Player.X,
		PlayerY:    s.Player.Y,
		Enemies:    len(s.Enemies),
		DotX:       s.Dot.X,
		DotY:       s.Dot.Y,
		DotVisible: s.Dot.Visible,
		GameOver:   s.GameOver,
		Games:      len(s.History),
	}
}

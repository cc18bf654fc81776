package maze

// StartGoal computes the start and goal cells for a configuration. The
// start is always the origin. With GoalInCenter the goal floors toward
// the lower-index cell for even dimensions, so a 16x16 maze centers at
// (7,7); that asymmetry is intentional. Otherwise the goal is the far
// corner.
func StartGoal(cfg Config) (start, goal Cell) {
	start = Cell{X: 0, Y: 0}
	if cfg.GoalInCenter {
		goal = Cell{X: (cfg.Width - 1) / 2, Y: (cfg.Height - 1) / 2}
	} else {
		goal = Cell{X: cfg.Width - 1, Y: cfg.Height - 1}
	}
	return start, goal
}

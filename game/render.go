package game

// Renderer draws frames for a front end. Cells are in grid units, the
// renderer works out where they go on its surface.
type Renderer interface {
	// fill the surface with the background colour
	Clear()

	// grid line overlay
	DrawGrid(g Grid)

	// one worm segment
	DrawSegment(c Cell)

	DrawFood(c Cell)
	DrawScore(score int)

	// large title in the middle of the start screen
	DrawTitle(title string)

	// small prompt in the bottom right corner
	DrawPrompt(text string)

	// "Game Over" banner drawn over the last board
	DrawGameOver()
}

// Draw composes a full frame for the current state
func (c *Controller) Draw(r Renderer) {
	switch c.state {
	case StateStartScreen:
		r.Clear()
		r.DrawTitle(c.cfg.Title)
		r.DrawPrompt(PromptText)

	case StateRunning:
		c.drawBoard(r)

	case StateGameOver:
		c.drawBoard(r)
		r.DrawGameOver()
		r.DrawPrompt(PromptText)
	}
}

// draw the grid, worm, food and score
func (c *Controller) drawBoard(r Renderer) {
	r.Clear()
	r.DrawGrid(c.grid)

	// a dead worm's head may be off the grid
	c.snake.Each(func(_ int, cell Cell) {
		if c.grid.Contains(cell) {
			r.DrawSegment(cell)
		}
	})
	r.DrawFood(c.food)
	r.DrawScore(c.snake.Score())
}

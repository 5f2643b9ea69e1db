package game

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
)

// scriptedInput hands out one batch of events per Poll
type scriptedInput struct {
	frames [][]Event
}

func (s *scriptedInput) Poll() []Event {
	if len(s.frames) == 0 {
		return nil
	}
	evs := s.frames[0]
	s.frames = s.frames[1:]
	return evs
}

func (s *scriptedInput) push(evs ...Event) {
	s.frames = append(s.frames, evs)
}

type recordingListener struct {
	ate     []int
	died    []int
	changes []string
}

func (l *recordingListener) Ate(score int)  { l.ate = append(l.ate, score) }
func (l *recordingListener) Died(score int) { l.died = append(l.died, score) }
func (l *recordingListener) StateChanged(from, to State) {
	l.changes = append(l.changes, from.String()+" -> "+to.String())
}

var (
	press   = Event{Kind: KeyDown, Key: KeyOther}
	release = Event{Kind: KeyUp, Key: KeyOther}
)

func newTestController(t *testing.T) (*Controller, *scriptedInput, *recordingListener) {
	t.Helper()
	in := &scriptedInput{}
	l := &recordingListener{}
	c, err := NewController(DefaultConfig(), in,
		WithRand(rand.New(rand.NewSource(1))),
		WithListener(l),
	)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, in, l
}

// start a game and swap in a known worm and food
func startGame(t *testing.T, c *Controller, in *scriptedInput, s *Snake, food Cell) {
	t.Helper()
	in.push(release)
	if err := c.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c.State() != StateRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
	c.snake = s
	c.food = food
}

// run frames until one more tick happened
func runTick(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < c.cfg.FramesPerTick(); i++ {
		if err := c.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func TestNewControllerRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 0
	if _, err := NewController(cfg, &scriptedInput{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewController() error = %v, want ErrInvalidConfig", err)
	}
}

func TestStartScreenWaitsForRelease(t *testing.T) {
	c, in, l := newTestController(t)
	if c.State() != StateStartScreen {
		t.Fatalf("state = %v, want start screen", c.State())
	}

	in.push(press)
	in.push()
	for i := 0; i < 2; i++ {
		if err := c.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if c.State() != StateStartScreen {
		t.Fatalf("left start screen without a key release")
	}

	in.push(release, Event{Kind: KeyDown, Key: KeyArrowUp})
	if err := c.Update(); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
	if c.Snake().Len() != InitialLength || c.Score() != 0 {
		t.Errorf("new game worm len %d score %d", c.Snake().Len(), c.Score())
	}
	if len(c.pending) != 0 {
		t.Errorf("events after the starting key were kept: %v", c.pending)
	}
	if want := []string{"start screen -> running"}; !reflect.DeepEqual(l.changes, want) {
		t.Errorf("changes = %v, want %v", l.changes, want)
	}
}

func TestQuitFromEveryState(t *testing.T) {
	quits := []Event{
		{Kind: Quit},
		{Kind: KeyDown, Key: KeyEscape},
		{Kind: KeyUp, Key: KeyEscape},
	}
	states := []State{StateStartScreen, StateRunning, StateGameOver}
	for _, st := range states {
		for _, q := range quits {
			t.Run(fmt.Sprintf("%v/%d/%d", st, q.Kind, q.Key), func(t *testing.T) {
				c, in, _ := newTestController(t)
				c.state = st
				in.push(press, q)
				if err := c.Update(); !errors.Is(err, ErrQuit) {
					t.Errorf("Update() = %v, want ErrQuit", err)
				}
			})
		}
	}
}

func TestTickRate(t *testing.T) {
	c, in, _ := newTestController(t)
	startGame(t, c, in, straightSnake(Right), Cell{0, 0})

	for i := 0; i < c.cfg.FramesPerTick()-1; i++ {
		if err := c.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if c.Ticks() != 0 || c.Snake().Head() != (Cell{5, 5}) {
		t.Fatalf("worm moved before a full tick: ticks %d head %v", c.Ticks(), c.Snake().Head())
	}
	if err := c.Update(); err != nil {
		t.Fatal(err)
	}
	if c.Ticks() != 1 || c.Snake().Head() != (Cell{6, 5}) {
		t.Errorf("after a tick: ticks %d head %v, want 1 {6 5}", c.Ticks(), c.Snake().Head())
	}
}

func TestRunningEatsFood(t *testing.T) {
	c, in, l := newTestController(t)
	startGame(t, c, in, straightSnake(Right), Cell{6, 5})

	runTick(t, c)
	if c.Snake().Head() != (Cell{6, 5}) || c.Snake().Len() != 3 {
		t.Fatalf("head %v len %d, want {6 5} len 3", c.Snake().Head(), c.Snake().Len())
	}

	runTick(t, c)
	if c.Snake().Len() != 4 || c.Score() != 1 {
		t.Errorf("len %d score %d, want 4 and 1", c.Snake().Len(), c.Score())
	}
	if !reflect.DeepEqual(l.ate, []int{1}) {
		t.Errorf("ate = %v, want [1]", l.ate)
	}
	if !c.Grid().Contains(c.Food()) {
		t.Errorf("respawned food %v off the grid", c.Food())
	}
}

func TestDirectionKeys(t *testing.T) {
	tests := []struct {
		key  Key
		want Cell
	}{
		{KeyArrowUp, Cell{5, 4}},
		{KeyW, Cell{5, 4}},
		{KeyArrowDown, Cell{5, 6}},
		{KeyS, Cell{5, 6}},
		{KeyArrowRight, Cell{6, 5}},
		{KeyD, Cell{6, 5}},

		// reversal ignored, worm carries on right
		{KeyArrowLeft, Cell{6, 5}},
		{KeyA, Cell{6, 5}},
		{KeyOther, Cell{6, 5}},
	}
	for _, tt := range tests {
		c, in, _ := newTestController(t)
		startGame(t, c, in, straightSnake(Right), Cell{0, 0})
		in.push(Event{Kind: KeyDown, Key: tt.key})
		runTick(t, c)
		if h := c.Snake().Head(); h != tt.want {
			t.Errorf("key %d: head %v, want %v", tt.key, h, tt.want)
		}
	}
}

func TestKeysBetweenTicksApplyInOrder(t *testing.T) {
	c, in, _ := newTestController(t)
	startGame(t, c, in, straightSnake(Right), Cell{0, 0})

	// up then left inside one tick: left would reverse the travel direction
	in.push(Event{Kind: KeyDown, Key: KeyArrowUp})
	in.push(Event{Kind: KeyUp, Key: KeyArrowUp})
	in.push(Event{Kind: KeyDown, Key: KeyArrowLeft})
	runTick(t, c)
	if h := c.Snake().Head(); h != (Cell{5, 4}) {
		t.Errorf("head %v, want {5 4}", h)
	}
	if c.State() != StateRunning {
		t.Errorf("state = %v, want running", c.State())
	}
}

func TestWallDeath(t *testing.T) {
	c, in, l := newTestController(t)
	startGame(t, c, in, NewSnake(c.Grid(), []Cell{{0, 5}, {1, 5}, {2, 5}}, Left), Cell{20, 20})

	runTick(t, c)
	if c.State() != StateGameOver {
		t.Fatalf("state = %v, want game over", c.State())
	}
	if c.Snake().Head() != (Cell{-1, 5}) {
		t.Errorf("head = %v, want {-1 5}", c.Snake().Head())
	}
	if !reflect.DeepEqual(l.died, []int{0}) {
		t.Errorf("died = %v, want [0]", l.died)
	}
}

func TestGameOverWaitsForFreshRelease(t *testing.T) {
	c, in, l := newTestController(t)
	startGame(t, c, in, NewSnake(c.Grid(), []Cell{{5, 0}, {5, 1}, {5, 2}}, Up), Cell{20, 20})
	runTick(t, c)
	if c.State() != StateGameOver {
		t.Fatalf("state = %v, want game over", c.State())
	}

	// releases during the delay, and the one pending when it ends, are dropped
	for i := 0; i <= c.delayFrames(); i++ {
		in.push(release)
		if err := c.Update(); err != nil {
			t.Fatal(err)
		}
		if c.State() != StateGameOver {
			t.Fatalf("frame %d: restarted during the delay", i)
		}
	}

	in.push(press)
	if err := c.Update(); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateGameOver {
		t.Fatal("restarted on a key press")
	}

	in.push(release)
	if err := c.Update(); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
	if c.Snake().Len() != InitialLength || !c.Snake().Alive() {
		t.Errorf("fresh worm %v", c.Snake().Cells())
	}
	want := []string{"start screen -> running", "running -> game over", "game over -> running"}
	if !reflect.DeepEqual(l.changes, want) {
		t.Errorf("changes = %v, want %v", l.changes, want)
	}
}

// recordingRenderer keeps a log of draw calls
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) Clear()                 { r.add("clear") }
func (r *recordingRenderer) DrawGrid(g Grid)        { r.add(fmt.Sprintf("grid %dx%d", g.Width, g.Height)) }
func (r *recordingRenderer) DrawSegment(c Cell)     { r.add(fmt.Sprintf("segment %d,%d", c.X, c.Y)) }
func (r *recordingRenderer) DrawFood(c Cell)        { r.add(fmt.Sprintf("food %d,%d", c.X, c.Y)) }
func (r *recordingRenderer) DrawScore(score int)    { r.add(fmt.Sprintf("score %d", score)) }
func (r *recordingRenderer) DrawTitle(title string) { r.add("title " + title) }
func (r *recordingRenderer) DrawPrompt(text string) { r.add("prompt " + text) }
func (r *recordingRenderer) DrawGameOver()          { r.add("game over") }
func (r *recordingRenderer) add(s string)           { r.calls = append(r.calls, s) }

func TestDraw(t *testing.T) {
	c, in, _ := newTestController(t)

	r := &recordingRenderer{}
	c.Draw(r)
	want := []string{"clear", "title Wormy!", "prompt " + PromptText}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("start screen: %v, want %v", r.calls, want)
	}

	startGame(t, c, in, straightSnake(Right), Cell{9, 9})
	r = &recordingRenderer{}
	c.Draw(r)
	board := []string{"clear", "grid 32x24", "segment 5,5", "segment 4,5", "segment 3,5", "food 9,9", "score 0"}
	if !reflect.DeepEqual(r.calls, board) {
		t.Errorf("running: %v, want %v", r.calls, board)
	}

	// dead with the head off the grid: it is not drawn
	c.snake = NewSnake(c.Grid(), []Cell{{-1, 5}, {0, 5}, {1, 5}}, Left)
	c.changeState(StateGameOver)
	r = &recordingRenderer{}
	c.Draw(r)
	want = []string{"clear", "grid 32x24", "segment 0,5", "segment 1,5", "food 9,9", "score 0", "game over", "prompt " + PromptText}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("game over: %v, want %v", r.calls, want)
	}
}

func TestInputFunc(t *testing.T) {
	calls := 0
	in := InputFunc(func() []Event {
		calls++
		return []Event{release}
	})
	c, err := NewController(DefaultConfig(), in, WithRand(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Update(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 || c.State() != StateRunning {
		t.Errorf("calls %d state %v", calls, c.State())
	}
}

package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ObstacleKind tags a static obstacle.
type ObstacleKind int

const (
	ObstacleGround ObstacleKind = iota
	ObstacleBrick
	ObstacleQuestion
	ObstaclePipe
	ObstaclePole
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleGround:
		return "ground"
	case ObstacleBrick:
		return "brick"
	case ObstacleQuestion:
		return "question"
	case ObstaclePipe:
		return "pipe"
	case ObstaclePole:
		return "pole"
	default:
		return "unknown"
	}
}

// Obstacle is an immutable piece of level geometry.
type Obstacle struct {
	Box  core.Box
	Kind ObstacleKind
}

// Solid reports whether the obstacle takes part in collision resolution.
// The goal pole is a trigger only.
func (o Obstacle) Solid() bool {
	return o.Kind != ObstaclePole
}

// DecorationKind tags a background decoration.
type DecorationKind int

const (
	DecorationCloud DecorationKind = iota
	DecorationHill
	DecorationBush
)

// Decoration is background scenery. It has no body and never collides.
// For hills and bushes Y is the baseline they stand on.
type Decoration struct {
	X, Y  float64
	Kind  DecorationKind
	Scale float64
}

// Parallax returns the fraction of the camera offset the decoration scrolls by.
func (d Decoration) Parallax() float64 {
	if d.Kind == DecorationCloud {
		return 0.5
	}
	return 1
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// LevelParams sizes the generated level.
type LevelParams struct {
	Width         float64 // world width
	GroundY       float64 // top edge of the ground strip
	Tile          float64 // ground and platform tile size
	HostileHeight float64 // used to stand spawns on the ground
}

// Level is the static world a session runs against. Obstacles are kept in
// generation order (ground, platforms, pipes, pole) and that order is the
// order collision resolution visits them in.
type Level struct {
	Width         float64
	GroundY       float64
	Obstacles     []Obstacle
	HostileSpawns []Point
	CoinSpawns    []Point
	Decorations   []Decoration
}

// span is an open interval on the x axis.
type span struct {
	from, to float64
}

func (s span) contains(x float64) bool {
	return x > s.from && x < s.to
}

// platformRun is a horizontal row of tiles floating rise units above ground.
type platformRun struct {
	x, rise, width float64
	kind           ObstacleKind
}

// pipeStack is a pipe standing on the ground, units tiles tall.
type pipeStack struct {
	x     float64
	units int
}

const (
	pipeWidth  = 96
	poleOffset = 200 // distance of the pole from the world end
	poleWidth  = 16
	poleHeight = 400
)

var groundGaps = []span{
	{800, 928},
	{1600, 1728},
	{3200, 3392},
}

var platformRuns = []platformRun{
	{300, 180, 192, ObstacleBrick},
	{500, 280, 64, ObstacleQuestion},
	{700, 180, 128, ObstacleBrick},
	{1000, 200, 256, ObstacleBrick},
	{1400, 300, 128, ObstacleBrick},
	{1800, 150, 192, ObstacleBrick},
	{2000, 280, 64, ObstacleQuestion},
	{2200, 200, 192, ObstacleBrick},
	{2600, 250, 128, ObstacleBrick},
	{2900, 180, 256, ObstacleBrick},
	{3500, 200, 192, ObstacleBrick},
	{3800, 300, 64, ObstacleQuestion},
	{4100, 180, 256, ObstacleBrick},
	{4500, 250, 128, ObstacleBrick},
	{4800, 180, 192, ObstacleBrick},
	{5200, 200, 128, ObstacleBrick},
	{5500, 280, 64, ObstacleQuestion},
	{5800, 200, 256, ObstacleBrick},
}

var pipeStacks = []pipeStack{
	{1200, 2},
	{2400, 3},
	{3000, 2},
	{4000, 4},
	{5000, 2},
}

var hostileSpawnX = []float64{
	400, 600, 900, 1100, 1500, 1900, 2300, 2700, 3100, 3600, 4200, 4600, 5300, 5700,
}

// coinSpawns holds x and height above ground.
var coinSpawns = []Point{
	{350, 250}, {410, 250}, {500, 350}, {750, 250}, {1050, 280},
	{1110, 280}, {1450, 380}, {1850, 230}, {2000, 350}, {2250, 280},
	{2650, 330}, {2950, 260}, {3550, 280}, {3800, 370}, {4150, 260},
	{4550, 330}, {4850, 260}, {5250, 280}, {5500, 350}, {5850, 280},
}

// GenerateLevel builds the level for the given parameters. Obstacles, spawns
// and coins depend only on p; rng only scatters decorations. Layout entries
// that start beyond the world width are dropped.
func GenerateLevel(p LevelParams, rng *rand.Rand) Level {
	return Level{
		Width:         p.Width,
		GroundY:       p.GroundY,
		Obstacles:     buildObstacles(p),
		HostileSpawns: buildHostileSpawns(p),
		CoinSpawns:    buildCoinSpawns(p),
		Decorations:   scatterDecorations(p, rng),
	}
}

func buildObstacles(p LevelParams) []Obstacle {
	obstacles := make([]Obstacle, 0, int(p.Width/p.Tile)+64)

	// Ground strip, skipping every tile that starts inside a gap
	for x := 0.0; x < p.Width; x += p.Tile {
		if inGap(x) {
			continue
		}
		obstacles = append(obstacles, Obstacle{
			Box:  core.NewBox(x, p.GroundY, p.Tile, p.Tile),
			Kind: ObstacleGround,
		})
	}

	for _, run := range platformRuns {
		for dx := 0.0; dx < run.width; dx += p.Tile {
			if run.x+dx >= p.Width {
				break
			}
			obstacles = append(obstacles, Obstacle{
				Box:  core.NewBox(run.x+dx, p.GroundY-run.rise, p.Tile, p.Tile),
				Kind: run.kind,
			})
		}
	}

	for _, pipe := range pipeStacks {
		if pipe.x >= p.Width {
			continue
		}
		h := float64(pipe.units) * p.Tile
		obstacles = append(obstacles, Obstacle{
			Box:  core.NewBox(pipe.x, p.GroundY-h, pipeWidth, h),
			Kind: ObstaclePipe,
		})
	}

	if poleX := p.Width - poleOffset; poleX >= 0 {
		obstacles = append(obstacles, Obstacle{
			Box:  core.NewBox(poleX, p.GroundY-poleHeight, poleWidth, poleHeight),
			Kind: ObstaclePole,
		})
	}

	return obstacles
}

func inGap(x float64) bool {
	for _, g := range groundGaps {
		if g.contains(x) {
			return true
		}
	}
	return false
}

func buildHostileSpawns(p LevelParams) []Point {
	spawns := make([]Point, 0, len(hostileSpawnX))
	for _, x := range hostileSpawnX {
		if x >= p.Width {
			continue
		}
		spawns = append(spawns, Point{X: x, Y: p.GroundY - p.HostileHeight})
	}
	return spawns
}

func buildCoinSpawns(p LevelParams) []Point {
	spawns := make([]Point, 0, len(coinSpawns))
	for _, c := range coinSpawns {
		if c.X >= p.Width {
			continue
		}
		spawns = append(spawns, Point{X: c.X, Y: p.GroundY - c.Y})
	}
	return spawns
}

// scatterDecorations places clouds, hills and bushes at regular intervals
// with random jitter in position and scale.
func scatterDecorations(p LevelParams, rng *rand.Rand) []Decoration {
	var decorations []Decoration

	for x := 0.0; x < p.Width; x += 600 {
		decorations = append(decorations, Decoration{
			Kind:  DecorationCloud,
			X:     x + rng.Float64()*200,
			Y:     50 + rng.Float64()*100,
			Scale: 1 + rng.Float64()*0.5,
		})
	}

	for x := 0.0; x < p.Width; x += 800 {
		decorations = append(decorations, Decoration{
			Kind:  DecorationHill,
			X:     x + rng.Float64()*200,
			Y:     p.GroundY,
			Scale: 0.8 + rng.Float64()*0.4,
		})
	}

	for x := 0.0; x < p.Width; x += 400 {
		decorations = append(decorations, Decoration{
			Kind:  DecorationBush,
			X:     x + rng.Float64()*150,
			Y:     p.GroundY,
			Scale: 0.6 + rng.Float64()*0.4,
		})
	}

	return decorations
}

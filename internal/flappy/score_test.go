package flappy

import (
	"math/rand"
	"testing"
)

func TestScoreTrackerBestIsMonotone(t *testing.T) {
	points := 0
	s := NewScoreTracker(func() { points++ })

	runs := []int{3, 1, 7, 0, 7, 2}
	best := 0
	for _, n := range runs {
		for i := 0; i < n; i++ {
			s.Increment()
		}
		s.Clear()
		best = max(best, n)
		if s.Best != best {
			t.Errorf("Best after run of %d = %d, expected %d", n, s.Best, best)
		}
		if s.Current != 0 {
			t.Errorf("Current after Clear = %d, expected 0", s.Current)
		}
	}
	if points != 20 {
		t.Errorf("point callback ran %d times, expected 20", points)
	}
}

func TestScoreTrackerCommitKeepsCurrent(t *testing.T) {
	s := NewScoreTracker(nil)
	s.Best = 5
	s.Current = 3
	s.Commit()
	if s.Best != 5 || s.Current != 3 {
		t.Errorf("Commit lowered best or cleared current: %+v", s)
	}
}

func TestSceneVariationSprites(t *testing.T) {
	night := SceneVariation{Backdrop: BackdropNight, Obstacle: ObstacleRed}
	if night.SkySprite() != "sky-night" || night.BackdropSprite() != "background-night" {
		t.Errorf("night sprites = %s, %s", night.SkySprite(), night.BackdropSprite())
	}
	if night.PipeSprite(true) != "pipe-red-inverted" {
		t.Errorf("PipeSprite(true) = %s", night.PipeSprite(true))
	}

	day := SceneVariation{}
	if day.SkySprite() != "sky-day" || day.PipeSprite(false) != "pipe-green" {
		t.Errorf("day sprites = %s, %s", day.SkySprite(), day.PipeSprite(false))
	}
}

func TestSceneVariationRollCoversChoices(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := &Flyer{}
	var v SceneVariation
	seen := map[Backdrop]bool{}
	obstacles := map[ObstacleColor]bool{}
	for i := 0; i < 100; i++ {
		v.Roll(rng, f)
		seen[v.Backdrop] = true
		obstacles[v.Obstacle] = true
	}
	if len(seen) != 2 || len(obstacles) != 2 {
		t.Errorf("Roll covered %d backdrops and %d obstacle colors", len(seen), len(obstacles))
	}
}

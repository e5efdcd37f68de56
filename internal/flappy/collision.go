package flappy

// resolveCollisions runs once per tick after every entity has moved.
//
// Obstacle pairs are checked first, in screen order. A pair the flyer
// touches ends the run with a hit and a delayed die sound; a pair whose
// trailing edge has passed the flyer awards one point, once. The ground is
// checked last: it always clamps the flyer, but only ends the run if the
// obstacles did not already, so a simultaneous hit sounds once.
func (g *Game) resolveCollisions() {
	box := g.flyer.Rect()

	hit := false
	pairs := g.pipes.pairs
	for i := range pairs {
		p := &pairs[i]
		if g.pipes.Collides(*p, box) {
			hit = true
			continue
		}
		if g.phase == PhaseRunning && !p.Scored && g.pipes.Cleared(*p, g.flyer.X) {
			p.Scored = true
			g.score.Increment()
		}
	}

	if hit && g.phase == PhaseRunning {
		g.play(SoundHit)
		g.scheduleDie()
		g.stop("obstacle")
	}

	if g.ground.Collides(g.flyer) && g.phase == PhaseRunning {
		g.play(SoundHit)
		g.stop("ground")
	}
}

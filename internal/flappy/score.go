package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ScoreTracker counts points for the current run and keeps the best run of
// the session. Best is never persisted.
type ScoreTracker struct {
	Current int
	Best    int

	playButton core.Rect
	onPoint    func()
}

// NewScoreTracker creates a tracker. onPoint runs on every increment.
func NewScoreTracker(onPoint func()) *ScoreTracker {
	return &ScoreTracker{onPoint: onPoint}
}

// Increment adds a point.
func (s *ScoreTracker) Increment() {
	s.Current++
	if s.onPoint != nil {
		s.onPoint()
	}
}

// Commit folds the current score into the best score.
func (s *ScoreTracker) Commit() {
	s.Best = max(s.Best, s.Current)
}

// Clear commits the current score and resets it. Best survives.
func (s *ScoreTracker) Clear() {
	s.Commit()
	s.Current = 0
}

// PlayButton returns the restart button area in playfield coordinates.
func (s *ScoreTracker) PlayButton() core.Rect {
	return s.playButton
}

// SetPlayButton records where the restart button is drawn.
func (s *ScoreTracker) SetPlayButton(r core.Rect) {
	s.playButton = r
}

// DigitPosition is where one digit of a number is drawn.
type DigitPosition struct {
	Digit int
	X     float64
}

// LayoutDigits spreads the decimal digits of value evenly around x, with
// spacing on each side of a digit's slot.
func LayoutDigits(value int, x, spacing float64) []DigitPosition {
	if value < 0 {
		value = 0
	}
	var digits []int
	for {
		digits = append([]int{value % 10}, digits...)
		value /= 10
		if value == 0 {
			break
		}
	}
	n := len(digits)
	out := make([]DigitPosition, n)
	for i, d := range digits {
		out[i] = DigitPosition{
			Digit: d,
			X:     x + float64(2*i-(n-1))*spacing,
		}
	}
	return out
}

// SummaryLayout positions the end-of-run screen.
type SummaryLayout struct {
	GameOver core.Rect
	Panel    core.Rect
	Play     core.Rect
	CurrentX float64
	CurrentY float64
	BestX    float64
	BestY    float64
}

// Summary digits are drawn at half the HUD size.
const (
	summaryDigitW       = 12
	summaryDigitH       = 18
	summaryDigitSpacing = 8
)

// LayoutSummary centers the banner, panel and button horizontally and
// stacks them with 20px gaps. The banner's top sits half the playfield
// width down from the top.
func LayoutSummary(images imageSource, width float64) SummaryLayout {
	over := images.MustImage(SpriteGameOver)
	panel := images.MustImage(SpriteScorePanel)
	play := images.MustImage(SpritePlay)

	var l SummaryLayout
	l.GameOver = core.NewRect(width/2-over.Width()/2, width/2-over.Height()/2, over.Width(), over.Height())
	l.Panel = core.NewRect(width/2-panel.Width()/2, l.GameOver.Bottom()+20, panel.Width(), panel.Height())
	l.Play = core.NewRect(width/2-play.Width()/2, l.Panel.Bottom()+20, play.Width(), play.Height())

	l.CurrentX = l.Panel.Right() - 50
	l.CurrentY = l.Panel.Bottom() - 82
	l.BestX = l.CurrentX
	l.BestY = l.CurrentY + 42
	return l
}

package hero

import (
	"context"
	"time"

	"glamhaven/pkg/models"
)

// Interval is how long each word stays on screen
const Interval = 3 * time.Second

// Directions a word can enter from
const (
	RightToLeft = "right-to-left"
	LeftToRight = "left-to-right"
	TopToBottom = "top-to-bottom"
	BottomToTop = "bottom-to-top"
)

// Words is the fixed cycle shown in the hero heading
var Words = []models.HeroWord{
	{Text: "LUXURY", Color: "text-accent", Direction: RightToLeft},
	{Text: "ELEGANT", Color: "text-rose-300", Direction: TopToBottom},
	{Text: "PREMIUM", Color: "text-amber-300", Direction: LeftToRight},
	{Text: "EXQUISITE", Color: "text-emerald-300", Direction: BottomToTop},
	{Text: "EXCLUSIVE", Color: "text-purple-300", Direction: RightToLeft},
}

// Cycler walks Words in order, wrapping at the end
type Cycler struct {
	words    []models.HeroWord
	interval time.Duration
	index    int
}

// NewCycler creates a cycler over words. A non-positive interval uses Interval.
func NewCycler(words []models.HeroWord, interval time.Duration) *Cycler {
	if interval <= 0 {
		interval = Interval
	}
	return &Cycler{words: words, interval: interval}
}

// Index returns the current word index
func (c *Cycler) Index() int { return c.index }

// Current returns the current word
func (c *Cycler) Current() models.HeroWord { return c.words[c.index] }

// Previous returns the index of the word shown before the current one
func (c *Cycler) Previous() int {
	n := len(c.words)
	return (c.index - 1 + n) % n
}

// Next advances to the following word and returns it
func (c *Cycler) Next() models.HeroWord {
	c.index = (c.index + 1) % len(c.words)
	return c.words[c.index]
}

// IndexAt returns the word index that a cycle begun at start shows at now
func (c *Cycler) IndexAt(start, now time.Time) int {
	if len(c.words) == 0 || now.Before(start) {
		return 0
	}
	ticks := int64(now.Sub(start) / c.interval)
	return int(ticks % int64(len(c.words)))
}

// Run advances the cycler every interval and calls fn with the new word.
// It returns when ctx is done; the ticker is stopped on return.
func (c *Cycler) Run(ctx context.Context, fn func(models.HeroWord)) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(c.Next())
		}
	}
}

// ActiveClass marks the word on screen
const ActiveClass = "is-active"

// EnterClass returns the off-screen class a word waits in before entering
// from its direction
func EnterClass(direction string) string {
	switch direction {
	case LeftToRight:
		return "from-left"
	case TopToBottom:
		return "from-top"
	case BottomToTop:
		return "from-bottom"
	default:
		return "from-right"
	}
}

// ExitClass returns the class of the word leaving while a word with direction
// enters. The outgoing word moves the same way as the incoming one.
func ExitClass(direction string) string {
	switch direction {
	case LeftToRight:
		return "to-right"
	case TopToBottom:
		return "to-bottom"
	case BottomToTop:
		return "to-top"
	default:
		return "to-left"
	}
}

// Slots lays out the frame showing words[index]: the current word is active,
// the one before it exits in the current word's direction and the rest wait
// at their entry side.
func Slots(words []models.HeroWord, index int) []models.HeroSlot {
	n := len(words)
	if n == 0 {
		return nil
	}
	index = ((index % n) + n) % n
	prev := (index - 1 + n) % n
	slots := make([]models.HeroSlot, 0, n)
	for i, w := range words {
		slot := models.HeroSlot{
			Word:  w,
			Enter: EnterClass(w.Direction),
			Exit:  ExitClass(w.Direction),
		}
		switch {
		case i == index:
			slot.Class = ActiveClass
			slot.Active = true
		case i == prev:
			slot.Class = ExitClass(words[index].Direction)
		default:
			slot.Class = slot.Enter
		}
		slots = append(slots, slot)
	}
	return slots
}

package riders

import (
	"fmt"

	"github.com/vovakirdan/pixel-riders/internal/core"
	"github.com/vovakirdan/pixel-riders/internal/stunt"
)

// Popup lifecycle, in ticks.
const (
	popIn      = 6
	popHold    = 60
	popFade    = 30
	popLife    = popIn + popHold + popFade
	maxPopups  = 4
	popupRow   = 2 // first row under the HUD
	comboRow   = 1
	comboTicks = popLife
)

// popup is a transient label drawn over the track.
type popup struct {
	text  string
	color core.Color
	age   int
}

// visibleText returns the part of the label shown at this age; labels
// type themselves in during the pop-in phase.
func (p popup) visibleText() string {
	if p.age >= popIn {
		return p.text
	}
	runes := []rune(p.text)
	n := (len(runes)*(p.age+1) + popIn - 1) / popIn
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

// currentColor dims the label in two steps while it fades out.
func (p popup) currentColor() core.Color {
	switch {
	case p.age >= popIn+popHold+popFade/2:
		return core.ColorGray
	case p.age >= popIn+popHold:
		return p.color.Dim()
	}
	return p.color
}

// popupQueue owns the on-screen stunt labels. Combo labels replace each
// other in a single slot; everything else stacks.
type popupQueue struct {
	items []popup
	combo *popup
}

// push adds a label for a stunt event.
func (q *popupQueue) push(ev stunt.Event) {
	text := ev.Label
	if ev.Points > 0 {
		text = fmt.Sprintf("%s +%d", ev.Label, ev.Points)
	}
	p := popup{text: text, color: eventColor(ev)}

	if ev.Category == stunt.CategoryCombo {
		q.combo = &p
		return
	}
	q.items = append(q.items, p)
	if len(q.items) > maxPopups {
		q.items = q.items[len(q.items)-maxPopups:]
	}
}

// tick ages every label and drops expired ones.
func (q *popupQueue) tick() {
	kept := q.items[:0]
	for _, p := range q.items {
		p.age++
		if p.age < popLife {
			kept = append(kept, p)
		}
	}
	q.items = kept

	if q.combo != nil {
		q.combo.age++
		if q.combo.age >= comboTicks {
			q.combo = nil
		}
	}
}

func (q *popupQueue) clear() {
	q.items = q.items[:0]
	q.combo = nil
}

func (q *popupQueue) len() int {
	n := len(q.items)
	if q.combo != nil {
		n++
	}
	return n
}

func (q *popupQueue) render(dst *core.Screen) {
	if q.combo != nil {
		dst.DrawTextCenteredColored(comboRow, q.combo.visibleText(), q.combo.currentColor())
	}
	for i, p := range q.items {
		text := p.visibleText()
		x := dst.Width() - len([]rune(p.text)) - 2
		dst.DrawTextColored(x, popupRow+i, text, p.currentColor())
	}
}

func eventColor(ev stunt.Event) core.Color {
	switch ev.Category {
	case stunt.CategoryFlip:
		return core.ColorOrange
	case stunt.CategoryAirtime:
		return core.ColorCyan
	case stunt.CategoryCombo:
		return core.ColorMagenta
	case stunt.CategoryLanding:
		switch ev.Quality {
		case stunt.QualityPerfect:
			return core.ColorBrightGreen
		case stunt.QualityClean:
			return core.ColorBrightBlue
		case stunt.QualityCrash:
			return core.ColorRed
		}
		return core.ColorGray
	}
	return core.ColorDefault
}

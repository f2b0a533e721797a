package device

import (
	"github.com/ayoisaiah/pomade/countdown"
)

// screen is the drawing surface the countdown view writes to.
type screen struct {
	regions map[countdown.Region]string
	icons   map[countdown.Slot]countdown.Icon
	writes  int
}

func newScreen() *screen {
	return &screen{
		regions: make(map[countdown.Region]string),
		icons:   make(map[countdown.Slot]countdown.Icon),
	}
}

func (s *screen) Render(text string, region countdown.Region) {
	s.regions[region] = text
	s.writes++
}

func (s *screen) SetActionIcon(slot countdown.Slot, icon countdown.Icon) {
	s.icons[slot] = icon
	s.writes++
}

func (s *screen) text(region countdown.Region) string {
	return s.regions[region]
}

func (s *screen) icon(slot countdown.Slot) countdown.Icon {
	return s.icons[slot]
}

package ui

import "strconv"

var controls = []string{
	"Controls:",
	"P Pause",
	"N Step once",
	"R Randomize",
	"X Clear",
	"E Export RLE",
	"L Import RLE",
	"S Toggle status",
	"C Toggle controls",
	"Q Quit",
}

// Status is the simulation state shown by the overlay.
type Status struct {
	Generation int
	Population int
	Paused     bool
}

// Lines returns the overlay text for the enabled sections.
func (s Status) Lines(showStatus, showControls bool) []string {
	var lines []string
	if showStatus {
		lines = append(lines,
			"Generation: "+strconv.Itoa(s.Generation),
			"Population: "+strconv.Itoa(s.Population),
		)
		if s.Paused {
			lines = append(lines, "P A U S E D")
		}
	}
	if showControls {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, controls...)
	}
	return lines
}

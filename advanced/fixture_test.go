package advanced

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point sets. This is not a full (or
// even correct) svg handler; each point is a <circle> element, and only the
// cx and cy attributes are read. If anything goes wrong, it bails.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]*Point, 0, len(circles))
	for _, el := range circles {
		x, err := strconv.ParseFloat(el.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", el.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(el.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", el.Attributes["cy"], err)
		}
		points = append(points, &Point{x, y})
	}
	return points
}

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/symmetry/advanced"
)

// Demo of symmetry detection. With no arguments it runs a few built-in point
// sets. Given a file (or "-" for stdin), it reads newline separated points in
// the form "x y" and prints every line of symmetry found, in implicit form.

var (
	pointsFile = kingpin.Arg("points", `File of "x y" lines, or "-" for stdin.`).String()
	exactFirst = kingpin.Flag("exact-first",
		"Abandon a candidate line at the first point with no mirror partner.").Bool()
	throughLine = kingpin.Flag("through-line",
		"Always check for a line running through all of the points.").Bool()
)

func main() {
	kingpin.Parse()

	cases := demoCases()
	if *pointsFile != "" {
		cases = [][]*advanced.Point{readPoints(*pointsFile)}
	}

	solver := advanced.NewSolver()
	solver.HighDegreeExpected = !*exactFirst
	solver.AlwaysCheckThroughLine = *throughLine

	for i, points := range cases {
		fmt.Println(aurora.Bold(fmt.Sprintf("Case %d: %d points", i+1, len(points))))
		for _, p := range points {
			fmt.Printf("  %s\n", p)
		}
		lines := solver.Find(points)
		if lines.Len() == 0 {
			fmt.Println(aurora.Red("  no lines of symmetry"))
		}
		for _, l := range lines.Lines() {
			fmt.Printf("  %s\n", aurora.Cyan(fmt.Sprintf("a = %.4f, b = %.4f, c = %.4f", l.A, l.B, l.C)))
		}
		fmt.Println()
	}
}

func demoCases() [][]*advanced.Point {
	return [][]*advanced.Point{
		{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 0}, {X: 0, Y: 2}},
		{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
		{{X: -2, Y: -1}, {X: -1, Y: -0.5}, {X: 0, Y: 0}, {X: 3, Y: 1.5}},
		{{X: 0, Y: 0}},
	}
}

func readPoints(path string) []*advanced.Point {
	in := os.Stdin
	if path != "-" {
		var err error
		in, err = os.Open(path)
		if err != nil {
			log.Fatalf("Could not open %q: %v", path, err)
		}
		defer in.Close()
	}

	points := []*advanced.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) *advanced.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	point, err := advanced.NewPoint(x, y)
	if err != nil {
		log.Fatalf("Invalid point %q: %v", line, err)
	}
	return point
}

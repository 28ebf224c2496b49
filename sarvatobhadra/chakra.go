// Package sarvatobhadra builds the 9x9 Sarvatobhadra chakra and computes
// tara bala (spec.md 4.10), grounded on
// original_source/astrovedic/vedic/sarvatobhadra/chakra.py's spiral fill
// pattern and direction-cell table.
package sarvatobhadra

import (
	"fmt"

	"github.com/vedastra/jyotisha/reftables"
)

// Cell is a (row, col) coordinate in the 9x9 grid, 0-indexed.
type Cell struct{ Row, Col int }

// fillPattern is the fixed spiral the chakra is filled along, starting at
// the centre (4,4) and spiralling outward.
var fillPattern = [81]Cell{
	{4, 4}, {4, 5}, {3, 5}, {3, 4}, {3, 3}, {4, 3}, {5, 3}, {5, 4}, {5, 5},
	{5, 6}, {4, 6}, {3, 6}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {2, 2}, {3, 2},
	{4, 2}, {5, 2}, {6, 2}, {6, 3}, {6, 4}, {6, 5}, {6, 6}, {6, 7}, {5, 7},
	{4, 7}, {3, 7}, {2, 7}, {1, 7}, {1, 6}, {1, 5}, {1, 4}, {1, 3}, {1, 2},
	{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}, {7, 1}, {7, 2}, {7, 3},
	{7, 4}, {7, 5}, {7, 6}, {7, 7}, {7, 8}, {6, 8}, {5, 8}, {4, 8}, {3, 8},
	{2, 8}, {1, 8}, {0, 8}, {0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}, {0, 2},
	{0, 1}, {0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0},
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 6}, {8, 7}, {8, 8},
}

// Direction names the nine chakra directions, Center included.
type Direction string

const (
	North     Direction = "North"
	Northeast Direction = "Northeast"
	East      Direction = "East"
	Southeast Direction = "Southeast"
	South     Direction = "South"
	Southwest Direction = "Southwest"
	West      Direction = "West"
	Northwest Direction = "Northwest"
	Center    Direction = "Center"
)

// directionCells gives the fixed cell list for each direction.
var directionCells = map[Direction][]Cell{
	North:     {{0, 4}, {1, 4}, {2, 4}, {3, 4}},
	Northeast: {{0, 8}, {1, 7}, {2, 6}, {3, 5}},
	East:      {{4, 8}, {4, 7}, {4, 6}, {4, 5}},
	Southeast: {{8, 8}, {7, 7}, {6, 6}, {5, 5}},
	South:     {{8, 4}, {7, 4}, {6, 4}, {5, 4}},
	Southwest: {{8, 0}, {7, 1}, {6, 2}, {5, 3}},
	West:      {{4, 0}, {4, 1}, {4, 2}, {4, 3}},
	Northwest: {{0, 0}, {1, 1}, {2, 2}, {3, 3}},
	Center:    {{4, 4}},
}

// AllDirections lists the nine directions in a stable order.
var AllDirections = []Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest, Center}

// Chakra is the filled 9x9 nakshatra grid plus planet placements.
type Chakra struct {
	JanmaNakshatra int
	Grid           [9][9]int // nakshatra number 1..27 per cell
	Planets        map[reftables.Planet]Cell
}

// Build fills the chakra grid from the birth (janma) nakshatra and places
// planets by mapping each one's current nakshatra to the first matching
// cell in spiral order -- the traditional construction places a planet at
// the cell holding its current nakshatra.
func Build(janmaNakshatra int, planetNakshatras map[reftables.Planet]int) (*Chakra, error) {
	if janmaNakshatra < 1 || janmaNakshatra > 27 {
		return nil, fmt.Errorf("sarvatobhadra: janma nakshatra must be 1..27, got %d", janmaNakshatra)
	}
	c := &Chakra{JanmaNakshatra: janmaNakshatra, Planets: make(map[reftables.Planet]Cell)}

	cellOf := make(map[int]Cell, 27)
	for i, cell := range fillPattern {
		nakshatra := ((janmaNakshatra-1+i)%27+27)%27 + 1
		c.Grid[cell.Row][cell.Col] = nakshatra
		if _, seen := cellOf[nakshatra]; !seen {
			cellOf[nakshatra] = cell
		}
	}

	for p, nakshatra := range planetNakshatras {
		if nakshatra < 1 || nakshatra > 27 {
			return nil, fmt.Errorf("sarvatobhadra: planet %s nakshatra must be 1..27, got %d", p, nakshatra)
		}
		c.Planets[p] = cellOf[nakshatra]
	}

	return c, nil
}

// CellAt returns the nakshatra occupying a grid cell.
func (c *Chakra) CellAt(row, col int) (int, error) {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return 0, fmt.Errorf("sarvatobhadra: cell (%d,%d) out of range", row, col)
	}
	return c.Grid[row][col], nil
}

// NakshatrasInDirection returns the nakshatra numbers occupying a
// direction's fixed cells.
func (c *Chakra) NakshatrasInDirection(d Direction) []int {
	cells := directionCells[d]
	out := make([]int, len(cells))
	for i, cell := range cells {
		out[i] = c.Grid[cell.Row][cell.Col]
	}
	return out
}

// PlanetsInDirection returns the planets whose current cell falls within
// a direction's fixed cells.
func (c *Chakra) PlanetsInDirection(d Direction) []reftables.Planet {
	cells := directionCells[d]
	inDirection := func(cell Cell) bool {
		for _, c := range cells {
			if c == cell {
				return true
			}
		}
		return false
	}
	var planets []reftables.Planet
	for p, cell := range c.Planets {
		if inDirection(cell) {
			planets = append(planets, p)
		}
	}
	return planets
}

// benefics/malefics for direction-quality aggregation, the same natural
// classification shadbala's drg bala uses.
var naturalBenefics = map[reftables.Planet]bool{
	reftables.Jupiter: true, reftables.Venus: true, reftables.Mercury: true, reftables.Moon: true,
}

// Quality is a direction's aggregate benefic/malefic planet balance.
type Quality struct {
	BeneficCount int
	MaleficCount int
	Net          int // BeneficCount - MaleficCount
}

// QualityOf aggregates the benefic/malefic planets occupying a direction.
func (c *Chakra) QualityOf(d Direction) Quality {
	var q Quality
	for _, p := range c.PlanetsInDirection(d) {
		if naturalBenefics[p] {
			q.BeneficCount++
		} else {
			q.MaleficCount++
		}
	}
	q.Net = q.BeneficCount - q.MaleficCount
	return q
}

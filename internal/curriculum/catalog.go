package curriculum

import (
	"fmt"
	"slices"
)

// Chapter names used throughout the roster.
const (
	Number     = "Number"
	Algebra    = "Algebra"
	Geometry   = "Geometry"
	Statistics = "Statistics"
)

var seed = []Chapter{
	{
		ID:          1,
		Name:        Number,
		Description: "Number operations, fractions, decimals, percentages",
		Difficulty:  DifficultyBoth,
		Weightage:   25,
		Subtopics: []string{
			"Place Value & Ordering",
			"Fractions & Decimals",
			"Percentages",
			"Ratio & Proportion",
			"Powers & Roots",
			"Standard Form",
		},
		ExamQuestions:  8,
		EstimatedHours: 40,
	},
	{
		ID:          2,
		Name:        Algebra,
		Description: "Expressions, equations, sequences, graphs",
		Difficulty:  DifficultyBoth,
		Weightage:   30,
		Subtopics: []string{
			"Expressions & Formulae",
			"Linear Equations",
			"Quadratic Equations",
			"Sequences",
			"Graphs & Functions",
			"Inequalities",
		},
		ExamQuestions:  10,
		EstimatedHours: 50,
	},
	{
		ID:          3,
		Name:        Geometry,
		Description: "Shapes, angles, area, volume, transformations",
		Difficulty:  DifficultyBoth,
		Weightage:   25,
		Subtopics: []string{
			"Angles & Polygons",
			"Pythagoras & Trigonometry",
			"Area & Perimeter",
			"Volume & Surface Area",
			"Transformations",
			"Constructions",
		},
		ExamQuestions:  8,
		EstimatedHours: 45,
	},
	{
		ID:          4,
		Name:        Statistics,
		Description: "Data handling, probability, averages",
		Difficulty:  DifficultyBoth,
		Weightage:   20,
		Subtopics: []string{
			"Data Collection",
			"Averages & Range",
			"Charts & Graphs",
			"Probability",
			"Correlation",
			"Sampling",
		},
		ExamQuestions:  6,
		EstimatedHours: 35,
	},
}

// catalog holds the chapters with lookup indices.
type catalog struct {
	chapters []Chapter
	byName   map[string]int
	byID     map[int]int
}

// c is the package-level catalog, built and validated in init.
var c *catalog

func init() {
	if err := validateChapters(seed); err != nil {
		panic(err)
	}
	c = buildCatalog(seed)
}

func buildCatalog(chapters []Chapter) *catalog {
	cat := &catalog{
		chapters: chapters,
		byName:   make(map[string]int, len(chapters)),
		byID:     make(map[int]int, len(chapters)),
	}
	for i, ch := range chapters {
		cat.byName[ch.Name] = i
		cat.byID[ch.ID] = i
	}
	return cat
}

// All returns every chapter in display order.
func All() []Chapter {
	out := make([]Chapter, len(c.chapters))
	for i, ch := range c.chapters {
		ch.Subtopics = slices.Clone(ch.Subtopics)
		out[i] = ch
	}
	return out
}

// Names returns the chapter names in display order.
func Names() []string {
	names := make([]string, len(c.chapters))
	for i, ch := range c.chapters {
		names[i] = ch.Name
	}
	return names
}

// Len returns the number of chapters in the catalog.
func Len() int {
	return len(c.chapters)
}

// ByName returns the chapter with the given name.
func ByName(name string) (Chapter, error) {
	i, ok := c.byName[name]
	if !ok {
		return Chapter{}, fmt.Errorf("chapter not found: %q", name)
	}
	ch := c.chapters[i]
	ch.Subtopics = slices.Clone(ch.Subtopics)
	return ch, nil
}

// ByID returns the chapter with the given ID.
func ByID(id int) (Chapter, error) {
	i, ok := c.byID[id]
	if !ok {
		return Chapter{}, fmt.Errorf("chapter not found: %d", id)
	}
	ch := c.chapters[i]
	ch.Subtopics = slices.Clone(ch.Subtopics)
	return ch, nil
}

// Has reports whether name is a catalog chapter.
func Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateChapters(c.chapters)
}

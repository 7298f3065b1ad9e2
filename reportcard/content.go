// Package reportcard turns gradebook course content into spreadsheet sheets.
package reportcard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Content is the ordered list of courses of one student.
type Content struct {
	Courses []Course
}

type Course struct {
	Class      string `yaml:"-"`
	Teacher    string `yaml:"teacher"`
	CourseCode string `yaml:"courseCode"`
	Grades     Grades `yaml:"grades"`
}

// Grades holds the grading periods of a course in document order.
type Grades []Period

type Period struct {
	Name     string    `yaml:"-"`
	Average  float64   `yaml:"average"`
	Sections []Section `yaml:"sections"`
}

type Section struct {
	Name        string       `yaml:"name"`
	Average     float64      `yaml:"average"`
	Weight      float64      `yaml:"weight"`
	Assignments []Assignment `yaml:"assignments"`
}

type Assignment struct {
	Name  string  `yaml:"name"`
	Grade float64 `yaml:"grade"`
}

// Load reads content from a JSON or YAML file. Courses are keyed by class
// name and keep the order they appear in the file.
func Load(path string) (*Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read content: %w", err)
	}
	return Parse(raw)
}

// Parse decodes content from JSON or YAML bytes.
func Parse(raw []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &c, nil
}

func (c *Content) UnmarshalYAML(n *yaml.Node) error {
	return decodeOrdered(n, "content", func(key string, value *yaml.Node) error {
		course := Course{Class: key}
		if err := value.Decode(&course); err != nil {
			return fmt.Errorf("class %q: %w", key, err)
		}
		c.Courses = append(c.Courses, course)
		return nil
	})
}

func (g *Grades) UnmarshalYAML(n *yaml.Node) error {
	return decodeOrdered(n, "grades", func(key string, value *yaml.Node) error {
		p := Period{Name: key}
		if err := value.Decode(&p); err != nil {
			return fmt.Errorf("period %q: %w", key, err)
		}
		*g = append(*g, p)
		return nil
	})
}

// Period returns the grading period with the given name.
func (g Grades) Period(name string) (Period, bool) {
	for _, p := range g {
		if p.Name == name {
			return p, true
		}
	}
	return Period{}, false
}

// decodeOrdered walks a mapping node key by key.
func decodeOrdered(n *yaml.Node, what string, fn func(key string, value *yaml.Node) error) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping", n.Line, what)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

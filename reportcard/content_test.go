package reportcard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "content.json"))
	require.NoError(t, err)

	require.Len(t, c.Courses, 2)
	algebra := c.Courses[0]
	assert.Equal(t, "Algebra II", algebra.Class)
	assert.Equal(t, "Smith", algebra.Teacher)
	assert.Equal(t, "MATH101", algebra.CourseCode)
	require.Len(t, algebra.Grades, 2)
	assert.Equal(t, "1Nin", algebra.Grades[0].Name)
	assert.Equal(t, 92.0, algebra.Grades[0].Average)
	assert.Equal(t, "2Nin", algebra.Grades[1].Name)
	assert.Len(t, algebra.Grades[0].Sections[0].Assignments, 2)

	assert.Equal(t, "English", c.Courses[1].Class)
}

func TestParseYAMLKeepsOrder(t *testing.T) {
	c, err := Parse([]byte(`
Zoology:
  teacher: Brown
  courseCode: BIO300
  grades:
    2Nin: {average: 80}
    1Nin: {average: 70}
Art:
  teacher: Green
  courseCode: ART100
`))
	require.NoError(t, err)
	require.Len(t, c.Courses, 2)
	assert.Equal(t, "Zoology", c.Courses[0].Class)
	assert.Equal(t, "Art", c.Courses[1].Class)
	assert.Equal(t, "2Nin", c.Courses[0].Grades[0].Name)
	assert.Empty(t, c.Courses[1].Grades)

	p, ok := c.Courses[0].Grades.Period("1Nin")
	require.True(t, ok)
	assert.Equal(t, 70.0, p.Average)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`["not", "a", "mapping"]`))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)
}

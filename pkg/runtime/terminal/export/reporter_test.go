package export

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/fit-tools/fittrack/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestReporter_FixedTemplate(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	err := r.Handle(domain.Report{
		TrainingType: "Running",
		Duration:     1,
		Distance:     9.75,
		Speed:        9.75,
		Calories:     797.805,
	})
	assert.NoError(t, err)
	assert.Equal(t,
		"Workout type: Running; Duration: 1.000 h; Distance: 9.750 km; "+
			"Avg speed: 9.750 km/h; Calories: 797.805.\n",
		buf.String())
}

func TestReporter_ThreeDecimalsRegardlessOfMagnitude(t *testing.T) {
	reports := []domain.Report{
		{TrainingType: "Swimming", Duration: 0.001, Distance: 0.0004, Speed: 0.4, Calories: 1},
		{TrainingType: "Running", Duration: 12.5, Distance: 123456.789, Speed: 9876.54321, Calories: 99999.9999},
		{TrainingType: "SportsWalking", Duration: 0, Distance: 0, Speed: 0, Calories: 0},
	}

	numeric := regexp.MustCompile(`\d+\.\d+`)
	for _, report := range reports {
		var buf bytes.Buffer
		r := NewReporter(&buf)

		assert.NoError(t, r.Handle(report))

		fields := numeric.FindAllString(buf.String(), -1)
		assert.Len(t, fields, 4, "report must contain exactly 4 numeric fields: %q", buf.String())
		for _, f := range fields {
			_, frac, _ := strings.Cut(f, ".")
			assert.Len(t, frac, 3, "field %q must have exactly 3 decimals", f)
		}
	}
}

func TestReporter_OneLinePerReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	assert.NoError(t, r.Handle(domain.Report{TrainingType: "Running"}))
	assert.NoError(t, r.Handle(domain.Report{TrainingType: "Swimming"}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Workout type: Running;"))
	assert.True(t, strings.HasPrefix(lines[1], "Workout type: Swimming;"))
}

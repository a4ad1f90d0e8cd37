package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/fit-tools/fittrack/pkg/models/domain"
)

// messageTemplate is the fixed output format: one line per workout, every
// numeric field with exactly 3 decimal digits.
const messageTemplate = `Workout type: {{.TrainingType}}; ` +
	`Duration: {{printf "%.3f" .Duration}} h; ` +
	`Distance: {{printf "%.3f" .Distance}} km; ` +
	`Avg speed: {{printf "%.3f" .Speed}} km/h; ` +
	`Calories: {{printf "%.3f" .Calories}}.
`

type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("report").Parse(messageTemplate)),
	}
}

func (r *Reporter) Handle(report domain.Report) error {
	if err := r.tmpl.Execute(r.writer, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

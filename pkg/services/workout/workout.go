package workout

import "github.com/fit-tools/fittrack/pkg/models/domain"

// Unit conversion constants shared by every workout kind.
const (
	mInKm  = 1000
	minInH = 60

	lenStep = 0.65 // meters covered per step
)

// Workout is one recorded exercise session. Distance and MeanSpeed have a
// shared default on Session; Calories has no default, so every concrete kind
// must supply its own formula to satisfy the interface.
type Workout interface {
	Type() string
	Raw() Session
	Distance() float64
	MeanSpeed() float64
	Calories() float64
}

// Session holds the raw sensor inputs common to every workout kind. It is a
// plain value, created once per sensor package and never mutated.
type Session struct {
	Action   int     // step or stroke count
	Duration float64 // hours
	Weight   float64 // kilograms
}

func (s Session) Raw() Session { return s }

// Distance returns the covered distance in km.
func (s Session) Distance() float64 {
	return stepDistance(s.Action, lenStep)
}

// MeanSpeed returns the average speed over the session in km/h.
func (s Session) MeanSpeed() float64 {
	return meanSpeed(s.Distance(), s.Duration)
}

func stepDistance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

func meanSpeed(distance, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return distance / duration
}

// Describe computes the full summary for a finished workout.
func Describe(w Workout) domain.Report {
	return domain.Report{
		TrainingType: w.Type(),
		Duration:     w.Raw().Duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.Calories(),
	}
}

// Stats computes just the derived metrics, without the display fields.
func Stats(w Workout) domain.Metrics {
	return domain.Metrics{
		Distance:  w.Distance(),
		MeanSpeed: w.MeanSpeed(),
		Calories:  w.Calories(),
	}
}

package workout

const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 1.79
)

// Running is a running session counted in steps.
type Running struct {
	Session
}

func (r Running) Type() string { return "Running" }

func (r Running) Calories() float64 {
	return (runningSpeedMultiplier*r.MeanSpeed() + runningSpeedShift) *
		r.Weight / mInKm * r.Duration * minInH
}

package workout

const (
	swimmingLenStep          = 1.38 // meters covered per stroke
	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

// Swimming is a pool session counted in strokes. Distance uses the stroke
// length instead of the step length, and mean speed comes from the pool
// geometry rather than the stroke count.
type Swimming struct {
	Session
	LengthPool float64 // meters
	CountPool  int     // completed laps
}

func (s Swimming) Type() string { return "Swimming" }

func (s Swimming) Distance() float64 {
	return stepDistance(s.Action, swimmingLenStep)
}

func (s Swimming) MeanSpeed() float64 {
	return meanSpeed(s.LengthPool*float64(s.CountPool)/mInKm, s.Duration)
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier *
		s.Weight * s.Duration
}

package workout

import "math"

const (
	walkingWeightMultiplier      = 0.035
	walkingSpeedHeightMultiplier = 0.029

	kmhInMsec = 0.278
	cmInM     = 100
)

// SportsWalking is a walking session; the calorie formula additionally needs
// the athlete's height.
type SportsWalking struct {
	Session
	Height float64 // centimeters
}

func (w SportsWalking) Type() string { return "SportsWalking" }

func (w SportsWalking) Calories() float64 {
	speedMsec := w.MeanSpeed() * kmhInMsec
	return (walkingWeightMultiplier*w.Weight +
		math.Pow(speedMsec, 2)/(w.Height/cmInM)*walkingSpeedHeightMultiplier*w.Weight) *
		w.Duration * minInH
}

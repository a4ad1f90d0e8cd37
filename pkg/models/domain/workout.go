package domain

// SensorPackage is one raw reading from the fitness tracker: a workout type
// code plus a positional sequence of numeric values whose meaning depends on
// the type.
type SensorPackage struct {
	Type string    // SWM / RUN / WLK
	Data []float64 // positional: action, duration, weight, ...
}

// Metrics holds the statistics derived from one workout session.
type Metrics struct {
	Distance  float64 // km
	MeanSpeed float64 // km/h
	Calories  float64 // kcal
}

// Report represents a complete workout summary ready for display.
type Report struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

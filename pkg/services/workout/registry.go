package workout

import (
	"errors"
	"fmt"
	"sync"
)

// Workout type codes as they appear in sensor packages.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// ErrUnknownWorkoutType is returned by Build for codes with no registered builder.
var ErrUnknownWorkoutType = errors.New("unknown workout type")

// Builder constructs a Workout from the positional values of a sensor package.
type Builder func(data []float64) (Workout, error)

// Registry maps workout type codes to builders
type Registry interface {
	// Register adds a builder for a new workout type code
	Register(code string, builder Builder) error
	// Build constructs a workout of the kind identified by code from positional sensor data
	Build(code string, data []float64) (Workout, error)
	// ListCodes returns the registered workout type codes
	ListCodes() []string
}

type registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry creates an empty workout registry
func NewRegistry() Registry {
	return &registry{
		builders: make(map[string]Builder),
	}
}

// NewDefaultRegistry creates a registry with the three supported workout
// kinds already registered.
func NewDefaultRegistry() Registry {
	r := NewRegistry()
	// The set is closed and the codes are distinct, so none of these can fail.
	_ = r.Register(CodeSwimming, BuildSwimming)
	_ = r.Register(CodeRunning, BuildRunning)
	_ = r.Register(CodeWalking, BuildWalking)
	return r
}

func (r *registry) Register(code string, builder Builder) error {
	if code == "" {
		return fmt.Errorf("workout type code cannot be empty")
	}
	if builder == nil {
		return fmt.Errorf("builder cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[code]; exists {
		return fmt.Errorf("workout type %q is already registered", code)
	}

	r.builders[code] = builder
	return nil
}

func (r *registry) Build(code string, data []float64) (Workout, error) {
	r.mu.RLock()
	builder, exists := r.builders[code]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}

	return builder(data)
}

func (r *registry) ListCodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.builders))
	for code := range r.builders {
		codes = append(codes, code)
	}
	return codes
}

// BuildRunning expects 3 positional values: action, duration, weight.
func BuildRunning(data []float64) (Workout, error) {
	if err := checkArity(CodeRunning, data, 3); err != nil {
		return nil, err
	}
	return Running{
		Session: Session{Action: int(data[0]), Duration: data[1], Weight: data[2]},
	}, nil
}

// BuildWalking expects 4 positional values: action, duration, weight, height.
func BuildWalking(data []float64) (Workout, error) {
	if err := checkArity(CodeWalking, data, 4); err != nil {
		return nil, err
	}
	return SportsWalking{
		Session: Session{Action: int(data[0]), Duration: data[1], Weight: data[2]},
		Height:  data[3],
	}, nil
}

// BuildSwimming expects 5 positional values: action, duration, weight,
// length_pool, count_pool.
func BuildSwimming(data []float64) (Workout, error) {
	if err := checkArity(CodeSwimming, data, 5); err != nil {
		return nil, err
	}
	return Swimming{
		Session:    Session{Action: int(data[0]), Duration: data[1], Weight: data[2]},
		LengthPool: data[3],
		CountPool:  int(data[4]),
	}, nil
}

func checkArity(code string, data []float64, want int) error {
	if len(data) != want {
		return fmt.Errorf("workout %s: expected %d values, got %d", code, want, len(data))
	}
	return nil
}

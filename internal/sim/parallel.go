package sim

import (
	"sync"

	"github.com/san-kum/mechsim/internal/ode"
)

// RunAll solves independent instances concurrently. Instances share no
// mutable state, so no synchronization beyond the join is needed; each
// goroutine gets its own solver because steppers may carry scratch buffers.
// The first failure wins; results line up with the input order.
func RunAll(instances []ode.SystemInstance, newSolver func() *Solver) ([]*ode.Trajectory, error) {
	results := make([]*ode.Trajectory, len(instances))
	errs := make([]error, len(instances))

	var wg sync.WaitGroup
	for i := range instances {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = newSolver().Solve(instances[idx])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

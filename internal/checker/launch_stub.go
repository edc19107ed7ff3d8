//go:build !windows

package checker

import "time"

// launchStrategy is one way of getting the tool running elevated with a
// hidden window. There is none outside Windows.
type launchStrategy struct {
	name   string
	direct bool
	run    func() (int, error)
}

func launchStrategies(executable, parameters string, timeout time.Duration) []launchStrategy {
	return nil
}

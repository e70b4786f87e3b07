package ports

import "context"

// DependencyChecker is an optional backing service reported on /health.
type DependencyChecker interface {
	Name() string
	Check(ctx context.Context) error
}

package gha

// Axis is one named dimension of a build matrix with its ordered values.
type Axis struct {
	name   string
	values []any
}

// NewAxis creates a matrix axis. Values keep their scalar type through
// rendering: an int axis renders unquoted, a string axis renders quoted.
func NewAxis(name string, values ...any) Axis {
	return Axis{name: name, values: values}
}

// Strategy is a job's parameterized fan-out definition. The engine only
// models and renders the matrix; the Cartesian-product expansion happens
// on the GitHub Actions side at execution time.
type Strategy struct {
	axes []Axis
}

// Matrix creates a strategy from one or more axes, rendered in the
// given order.
func Matrix(axes ...Axis) *Strategy {
	return &Strategy{axes: axes}
}

package domain

import "fmt"

// DataSourceError reports station data that could not be read or parsed.
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("data source: %v", e.Err)
	}
	return fmt.Sprintf("data source %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// InvalidInputError reports a dataset the route builder refuses to plan,
// e.g. zero or several depots.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

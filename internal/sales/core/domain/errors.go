package domain

import "fmt"

// FetchError reports that the source table could not be read.
type FetchError struct {
	Op  string // "query", "scan" or "rows"
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch sales (%s): %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

package report

import "errors"

var (
	ErrUnknownReport       = errors.New("unknown report kind")
	ErrUnsupportedDocument = errors.New("unsupported document kind")
	ErrInconsistentTotals  = errors.New("rounded values cannot be reconciled with their total")
	ErrNoWorkHours         = errors.New("no work hours in the requested range")
)

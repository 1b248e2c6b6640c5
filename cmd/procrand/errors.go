package main

import "errors"

var (
	errUnknownFormat = errors.New("unknown output format")
	errNegativeCount = errors.New("count must not be negative")
	errFailedChecks  = errors.New("some generators failed the quality checks")
)

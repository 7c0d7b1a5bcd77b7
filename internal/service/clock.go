package service

import (
	"time"
)

// Clock abstracts the current date so fine computations are testable.
// Today is truncated to day granularity in UTC; all due-date arithmetic
// happens at that granularity.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type realClock struct{}

func NewClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now().UTC() }

func (realClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

package cache

import "time"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o cachefakes/fake_clock.go . Clock

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

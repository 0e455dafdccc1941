package ports

import "time"

// Clock provee la hora actual; los tests inyectan una fija.
type Clock interface {
	Now() time.Time
}

// SystemClock usa time.Now en la zona local (los días del panel son días locales).
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

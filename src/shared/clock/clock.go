package clock

import "time"

// Clock abstrae la obtención de la hora actual para poder testear
// la lógica dependiente del tiempo (ventana de gracia de precios)
type Clock interface {
	Now() time.Time
}

// RealClock retorna la hora real del sistema
type RealClock struct{}

// Now retorna la hora actual
func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock es un reloj controlable para tests
type FakeClock struct {
	now time.Time
}

// NewFake crea un FakeClock fijado en el instante dado
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now retorna la hora fijada
func (f *FakeClock) Now() time.Time {
	return f.now
}

// Advance avanza el reloj la duración indicada
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

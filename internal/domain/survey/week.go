package survey

import "time"

// Clock abstrae el reloj del sistema para poder fijar el tiempo en pruebas.
type Clock interface {
	Now() time.Time
}

// SystemClock implementa Clock con time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// WeekRange devuelve el lunes y el viernes de la semana calendario que contiene t.
func WeekRange(t time.Time) (start, end time.Time) {
	d := dateOnly(t)
	// time.Weekday: domingo=0; la semana de la encuesta arranca en lunes.
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	start = d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 4)
}

// NextWeekRange devuelve el lunes y el viernes de la semana siguiente: el primer
// lunes estrictamente posterior a t, más cuatro días.
func NextWeekRange(t time.Time) (start, end time.Time) {
	d := dateOnly(t).AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d, d.AddDate(0, 0, 4)
}

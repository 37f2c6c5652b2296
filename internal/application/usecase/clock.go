package usecase

import "time"

// now fecha de creación asignada por el servicio (UTC, precisión de segundos).
var now = func() time.Time { return time.Now().UTC().Truncate(time.Second) }

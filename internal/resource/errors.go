package resource

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoSoportado is returned when a verb has no configured path for the
// resource (e.g. movimientos cannot be created from this system).
var ErrNoSoportado = errors.New("operacion no soportada por el recurso")

// ErrorHTTP is an application failure: the backend answered with a non-2xx
// status. It carries the status and body text so callers can distinguish
// "not found" from other rejections. Transport failures are plain wrapped
// errors and never of this type.
type ErrorHTTP struct {
	Recurso string
	Status  int
	Cuerpo  string
}

func (e *ErrorHTTP) Error() string {
	return fmt.Sprintf("%s: backend respondió %d: %s", e.Recurso, e.Status, e.Cuerpo)
}

// EsNoEncontrado reports whether err is a backend 404.
func EsNoEncontrado(err error) bool {
	var he *ErrorHTTP
	return errors.As(err, &he) && he.Status == http.StatusNotFound
}

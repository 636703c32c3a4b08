package fusion

import (
	"errors"
	"fmt"
)

// ErrSinEncabezado indica que el archivo no trae la fila de encabezado.
var ErrSinEncabezado = errors.New("el archivo no tiene fila de encabezado")

// ErrorFilaMalformada indica que una fila de datos no tiene la misma
// cantidad de columnas que el encabezado. La ingesta es todo-o-nada: una
// sola fila malformada aborta el archivo completo.
type ErrorFilaMalformada struct {
	Fila      int
	Esperadas int
	Obtenidas int
}

func (e *ErrorFilaMalformada) Error() string {
	return fmt.Sprintf("fila %d malformada: se esperaban %d columnas y se obtuvieron %d", e.Fila, e.Esperadas, e.Obtenidas)
}

// ErrorCampo indica que un valor de celda no pudo convertirse al tipo
// esperado (entero, decimal o fecha).
type ErrorCampo struct {
	Campo string
	Valor string
	Fila  int
	Err   error
}

func (e *ErrorCampo) Error() string {
	return fmt.Sprintf("fila %d: campo %q con valor %q no es válido", e.Fila, e.Campo, e.Valor)
}

func (e *ErrorCampo) Unwrap() error {
	return e.Err
}

// ErrorModoServicio indica un token de modo de servicio fuera de los dos
// valores reconocidos (FULL, SELF).
type ErrorModoServicio struct {
	Valor string
	Fila  int
}

func (e *ErrorModoServicio) Error() string {
	return fmt.Sprintf("fila %d: modo de servicio desconocido %q", e.Fila, e.Valor)
}

package fusion

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Registro es una fila del export con los valores crudos indexados por el
// nombre de columna del encabezado.
type Registro map[string]string

// ParseTabular convierte el texto delimitado del export Fusion en registros
// nombrados por la fila de encabezado. Las líneas vacías se descartan y se
// preserva el orden de filas del archivo.
//
// Modo estricto: una fila con cantidad de columnas distinta al encabezado
// devuelve ErrorFilaMalformada y no se produce ningún resultado parcial.
func ParseTabular(contenido string) ([]Registro, error) {
	reader := csv.NewReader(strings.NewReader(contenido))
	reader.Comma = ','
	// La validación de columnas es nuestra, con número de fila en el error
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	encabezado, err := reader.Read()
	if err == io.EOF {
		return nil, ErrSinEncabezado
	}
	if err != nil {
		return nil, errors.Wrap(err, "error leyendo encabezado")
	}

	for i, nombre := range encabezado {
		encabezado[i] = strings.TrimSpace(nombre)
	}

	registros := make([]Registro, 0)
	fila := 0
	for {
		campos, err := reader.Read()
		if err == io.EOF {
			break
		}
		fila++
		if err != nil {
			return nil, errors.Wrapf(err, "error leyendo fila %d", fila)
		}

		if len(campos) != len(encabezado) {
			return nil, &ErrorFilaMalformada{
				Fila:      fila,
				Esperadas: len(encabezado),
				Obtenidas: len(campos),
			}
		}

		registro := make(Registro, len(encabezado))
		for i, nombre := range encabezado {
			registro[nombre] = campos[i]
		}
		registros = append(registros, registro)
	}

	return registros, nil
}

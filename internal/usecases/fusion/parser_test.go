package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTabular(t *testing.T) {
	tests := []struct {
		name      string
		contenido string
		validate  func(t *testing.T, registros []Registro, err error)
	}{
		{
			name:      "Archivo con encabezado y dos filas",
			contenido: "Bomba,Combustible,Total\n1,Regular,10.00\n2,Super,20.50\n",
			validate: func(t *testing.T, registros []Registro, err error) {
				require.NoError(t, err)
				require.Len(t, registros, 2)
				assert.Equal(t, "1", registros[0]["Bomba"])
				assert.Equal(t, "Regular", registros[0]["Combustible"])
				assert.Equal(t, "10.00", registros[0]["Total"])
				assert.Equal(t, "Super", registros[1]["Combustible"])
			},
		},
		{
			name:      "Archivo vacío devuelve ErrSinEncabezado",
			contenido: "",
			validate: func(t *testing.T, registros []Registro, err error) {
				assert.ErrorIs(t, err, ErrSinEncabezado)
				assert.Nil(t, registros)
			},
		},
		{
			name:      "Solo encabezado produce lista vacía",
			contenido: "Bomba,Combustible,Total\n",
			validate: func(t *testing.T, registros []Registro, err error) {
				require.NoError(t, err)
				assert.Empty(t, registros)
			},
		},
		{
			name:      "Fila con columnas de menos aborta el archivo",
			contenido: "Bomba,Combustible,Total\n1,Regular,10.00\n2,Super\n",
			validate: func(t *testing.T, registros []Registro, err error) {
				var filaErr *ErrorFilaMalformada
				require.ErrorAs(t, err, &filaErr)
				assert.Equal(t, 2, filaErr.Fila)
				assert.Equal(t, 3, filaErr.Esperadas)
				assert.Equal(t, 2, filaErr.Obtenidas)
				assert.Nil(t, registros)
			},
		},
		{
			name:      "Fila con columnas de más aborta el archivo",
			contenido: "Bomba,Total\n1,10.00,extra\n",
			validate: func(t *testing.T, registros []Registro, err error) {
				var filaErr *ErrorFilaMalformada
				require.ErrorAs(t, err, &filaErr)
				assert.Equal(t, 1, filaErr.Fila)
				assert.Equal(t, 2, filaErr.Esperadas)
				assert.Equal(t, 3, filaErr.Obtenidas)
			},
		},
		{
			name:      "Las líneas vacías se descartan",
			contenido: "Bomba,Total\n\n1,10.00\n\n2,20.00\n\n",
			validate: func(t *testing.T, registros []Registro, err error) {
				require.NoError(t, err)
				require.Len(t, registros, 2)
				assert.Equal(t, "1", registros[0]["Bomba"])
				assert.Equal(t, "2", registros[1]["Bomba"])
			},
		},
		{
			name:      "Los nombres de columna se limpian de espacios",
			contenido: " Bomba , Total \n1,10.00\n",
			validate: func(t *testing.T, registros []Registro, err error) {
				require.NoError(t, err)
				require.Len(t, registros, 1)
				assert.Equal(t, "1", registros[0]["Bomba"])
				assert.Equal(t, "10.00", registros[0]["Total"])
			},
		},
		{
			name:      "El orden de filas del archivo se preserva",
			contenido: "Bomba\n3\n1\n2\n",
			validate: func(t *testing.T, registros []Registro, err error) {
				require.NoError(t, err)
				require.Len(t, registros, 3)
				assert.Equal(t, "3", registros[0]["Bomba"])
				assert.Equal(t, "1", registros[1]["Bomba"])
				assert.Equal(t, "2", registros[2]["Bomba"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registros, err := ParseTabular(tt.contenido)
			tt.validate(t, registros, err)
		})
	}
}

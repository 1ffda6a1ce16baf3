package dane

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const sampleXML = `<?xml version="1.0" encoding="ISO-8859-1"?>
<parametros>
  <tabla nombre="Municipios">
    <valor cod="15759" nombre="SOGAMOSO"><otro codigo="15" valor="BOYACÁ"/></valor>
    <valor cod="15001" nombre="TUNJA"><otro codigo="15" valor="BOYACÁ"/></valor>
    <valor cod="15407" nombre="VILLA DE LEYVA"><otro codigo="15" valor="BOYACÁ"/></valor>
    <valor cod="05001" nombre="MEDELLÍN"><otro codigo="05" valor="ANTIOQUIA"/></valor>
    <valor cod="" nombre="SIN CODIGO"><otro codigo="05" valor="ANTIOQUIA"/></valor>
  </tabla>
</parametros>`

func latin1(t *testing.T, s string) *bytes.Reader {
	t.Helper()
	enc, err := charmap.ISO8859_1.NewEncoder().String(s)
	require.NoError(t, err)
	return bytes.NewReader([]byte(enc))
}

func TestParse_ISO88591(t *testing.T) {
	cat, err := Parse(latin1(t, sampleXML), "")
	require.NoError(t, err)

	require.Len(t, cat.Departamentos, 2)
	assert.Equal(t, "05", cat.Departamentos[0].Codigo)
	assert.Equal(t, "Boyacá", cat.Departamentos[1].Nombre)

	require.Len(t, cat.Municipios, 4)
	assert.Equal(t, "05001", cat.Municipios[0].Codigo)
	assert.Equal(t, "Medellín", cat.Municipios[0].Nombre)
	assert.Equal(t, "Villa de Leyva", cat.Municipios[2].Nombre)
}

func TestParse_FiltraDepartamento(t *testing.T) {
	cat, err := Parse(latin1(t, sampleXML), "15")
	require.NoError(t, err)
	assert.Len(t, cat.Departamentos, 1)
	assert.Len(t, cat.Municipios, 3)
}

func TestParse_Vacio(t *testing.T) {
	_, err := Parse(strings.NewReader(`<parametros><tabla/></parametros>`), "")
	assert.Error(t, err)
}

func TestWriteSQL(t *testing.T) {
	cat, err := Parse(latin1(t, sampleXML), "15")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cat.WriteSQL(&buf))
	sql := buf.String()
	assert.Contains(t, sql, "('15', 'Boyacá')\nON CONFLICT (codigo)")
	assert.Contains(t, sql, "('15001', 'Tunja', '15'),")
	assert.Contains(t, sql, "('15759', 'Sogamoso', '15')\nON CONFLICT")
}

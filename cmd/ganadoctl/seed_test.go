package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const municipiosXML = `<?xml version="1.0" encoding="UTF-8"?>
<parametros>
  <tabla nombre="Municipios">
    <valor cod="15001" nombre="TUNJA"><otro codigo="15" valor="BOYACÁ"/></valor>
    <valor cod="15516" nombre="PAIPA"><otro codigo="15" valor="BOYACÁ"/></valor>
    <valor cod="05001" nombre="MEDELLÍN"><otro codigo="05" valor="ANTIOQUIA"/></valor>
  </tabla>
</parametros>`

func TestSeedUbicaciones_EscribeSQL(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "Municipios.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(municipiosXML), 0o644))
	outPath := filepath.Join(dir, "seed.sql")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"seed-ubicaciones", xmlPath, "--departamento", "15", "--out", outPath})
	require.NoError(t, root.Execute())

	sql, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(sql), "('15', 'Boyacá')")
	assert.Contains(t, string(sql), "('15516', 'Paipa', '15')")
	assert.NotContains(t, string(sql), "Medellín")
}

func TestSeedUbicaciones_RequiereArchivo(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed-ubicaciones"})
	assert.Error(t, root.Execute())
}

func TestMigrateList(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"migrate", "list"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "000001_init.up.sql")
}

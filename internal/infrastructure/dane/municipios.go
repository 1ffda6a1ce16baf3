// Package dane lee la tabla paramétrica de municipios (Municipios.xml, codificación DANE).
package dane

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/pkg/textnorm"
)

// Catalogo departamentos y municipios leídos del XML.
type Catalogo struct {
	Departamentos []entity.Departamento
	Municipios    []entity.Municipio
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(charset) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	default:
		return input, nil
	}
}

// Parse lee elementos <valor cod=".." nombre=".."><otro codigo=".." valor=".."/></valor>.
// cod es el código DANE del municipio; otro/@codigo y otro/@valor el departamento.
// Si soloDepartamento no está vacío, filtra por ese código.
func Parse(r io.Reader, soloDepartamento string) (*Catalogo, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("dane: leer XML: %w", err)
	}

	deps := make(map[string]string)
	var muns []entity.Municipio
	for _, v := range doc.FindElements("//valor") {
		cod := strings.TrimSpace(v.SelectAttrValue("cod", ""))
		nombre := strings.TrimSpace(v.SelectAttrValue("nombre", ""))
		otro := v.SelectElement("otro")
		if cod == "" || nombre == "" || otro == nil {
			continue
		}
		depCod := strings.TrimSpace(otro.SelectAttrValue("codigo", ""))
		depNombre := strings.TrimSpace(otro.SelectAttrValue("valor", ""))
		if depCod == "" || depNombre == "" {
			continue
		}
		if soloDepartamento != "" && depCod != soloDepartamento {
			continue
		}
		deps[depCod] = textnorm.Title(depNombre)
		muns = append(muns, entity.Municipio{Codigo: cod, Nombre: textnorm.Title(nombre), CodigoDepartamento: depCod})
	}
	if len(muns) == 0 {
		return nil, fmt.Errorf("dane: el XML no contiene municipios")
	}

	cat := &Catalogo{Municipios: muns}
	for cod, nombre := range deps {
		cat.Departamentos = append(cat.Departamentos, entity.Departamento{Codigo: cod, Nombre: nombre})
	}
	sort.Slice(cat.Departamentos, func(i, j int) bool { return cat.Departamentos[i].Codigo < cat.Departamentos[j].Codigo })
	sort.Slice(cat.Municipios, func(i, j int) bool { return cat.Municipios[i].Codigo < cat.Municipios[j].Codigo })
	return cat, nil
}

// WriteSQL escribe el catálogo como script idempotente (INSERT ... ON CONFLICT).
func (c *Catalogo) WriteSQL(w io.Writer) error {
	var b strings.Builder
	b.WriteString("-- Departamentos y municipios (código DANE)\n\n")
	b.WriteString("INSERT INTO departamentos (codigo, nombre) VALUES\n")
	for i, d := range c.Departamentos {
		fmt.Fprintf(&b, "  ('%s', '%s')%s\n", escapeSQL(d.Codigo), escapeSQL(d.Nombre), sep(i, len(c.Departamentos)))
	}
	b.WriteString("ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre;\n\n")
	b.WriteString("INSERT INTO municipios (codigo, nombre, codigo_departamento) VALUES\n")
	for i, m := range c.Municipios {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s')%s\n", escapeSQL(m.Codigo), escapeSQL(m.Nombre), escapeSQL(m.CodigoDepartamento), sep(i, len(c.Municipios)))
	}
	b.WriteString("ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre, codigo_departamento = EXCLUDED.codigo_departamento;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Package pdf genera la ficha técnica de un bovino en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre / código + raza  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: sexo, edad, peso, ubicación, estado, valor           │
//	│  PROPIETARIO: nombre + contacto                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTORIAL SANITARIO: Fecha | Tipo | Producto | Dosis | Vet  │
//	│  HISTORIAL REPRODUCTIVO: Fecha | Evento | Resultado          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.FichaGenerator = (*FichaGenerator)(nil)

// FichaGenerator implementa ports.FichaGenerator usando Maroto v2.
type FichaGenerator struct{}

// NewFichaGenerator construye el generador.
func NewFichaGenerator() *FichaGenerator { return &FichaGenerator{} }

// GenerateFicha genera el PDF y devuelve sus bytes.
func (g *FichaGenerator) GenerateFicha(_ context.Context, data ports.FichaData) ([]byte, error) {
	if data.Bovino == nil {
		return nil, fmt.Errorf("pdf: bovino requerido")
	}
	b := data.Bovino

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha técnica "+titulo(b), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datosRows(b)...)
	if data.Propietario != nil {
		m.AddRows(propietarioRow(data.Propietario))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("HISTORIAL SANITARIO"))
	m.AddRows(sanitarioRows(data.Sanitarios)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("HISTORIAL REPRODUCTIVO"))
	m.AddRows(reproductivoRows(data.Reproductivos)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titulo(b *entity.Bovino) string {
	switch {
	case b.Nombre != nil && *b.Nombre != "":
		return *b.Nombre
	case b.CodigoInterno != nil && *b.CodigoInterno != "":
		return *b.CodigoInterno
	default:
		return "#" + strconv.FormatInt(b.ID, 10)
	}
}

func headerRow(data ports.FichaData) core.Row {
	b := data.Bovino
	return row.New(18).Add(
		col.New(8).Add(
			text.New(titulo(b), props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New(b.Raza+" · "+sexoLabel(b.Sexo), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("FICHA TÉCNICA", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New("Generada: "+data.GeneradaEn.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
		),
	)
}

func datosRows(b *entity.Bovino) []core.Row {
	campos := [][2]string{
		{"Código interno", strOr(b.CodigoInterno, "—")},
		{"Edad", edadLabel(b.Edad)},
		{"Peso", decimalOr(b.Peso, " kg", "—")},
		{"Ubicación", ubicacionLabel(b)},
		{"Estado sanitario", strOr(b.EstadoSanitario, "—")},
		{"Valor estimado", moneyOr(b.ValorEstimado, "—")},
		{"Descripción", strOr(b.Descripcion, "—")},
	}
	rows := make([]core.Row, 0, len(campos))
	for _, c := range campos {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(c[0]+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(9).Add(text.New(c[1], props.Text{Size: 8, Top: 1})),
		))
	}
	return rows
}

func propietarioRow(u *entity.User) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROPIETARIO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%s   |   %s   |   Tel: %s   |   %s, %s",
				u.NombreCompleto(), u.Email, strOr(u.Telefono, "—"), u.Municipio, u.Departamento,
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func headerCells(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})))
	}
	return row.New(6).Add(cols...)
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin registros", props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

func sanitarioRows(regs []*entity.RegistroSanitario) []core.Row {
	if len(regs) == 0 {
		return []core.Row{emptyRow()}
	}
	sizes := []int{2, 2, 3, 2, 3}
	rows := []core.Row{headerCells([]string{"Fecha", "Tipo", "Producto", "Dosis", "Veterinario"}, sizes)}
	for _, r := range regs {
		vals := []string{r.Fecha.Format("02/01/2006"), r.TipoRegistro, strOr(r.Producto, "—"), strOr(r.Dosis, "—"), strOr(r.Veterinario, "—")}
		rows = append(rows, valueRow(vals, sizes))
	}
	return rows
}

func reproductivoRows(regs []*entity.RegistroReproductivo) []core.Row {
	if len(regs) == 0 {
		return []core.Row{emptyRow()}
	}
	sizes := []int{2, 2, 4, 4}
	rows := []core.Row{headerCells([]string{"Fecha", "Evento", "Detalles", "Resultado"}, sizes)}
	for _, r := range regs {
		vals := []string{r.Fecha.Format("02/01/2006"), r.TipoEvento, strOr(r.Detalles, "—"), strOr(r.Resultado, "—")}
		rows = append(rows, valueRow(vals, sizes))
	}
	return rows
}

func valueRow(vals []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(vals))
	for i, v := range vals {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{Size: 8, Top: 1, Color: colorGray})))
	}
	return row.New(6).Add(cols...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sexoLabel(s string) string {
	if s == entity.SexoMacho {
		return "Macho"
	}
	return "Hembra"
}

func edadLabel(e *int) string {
	if e == nil {
		return "—"
	}
	if *e == 1 {
		return "1 año"
	}
	return strconv.Itoa(*e) + " años"
}

func ubicacionLabel(b *entity.Bovino) string {
	if b.UbicacionMunicipio == nil || *b.UbicacionMunicipio == "" {
		return b.UbicacionDepartamento
	}
	return *b.UbicacionMunicipio + ", " + b.UbicacionDepartamento
}

func strOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func decimalOr(d *decimal.Decimal, suffix, fallback string) string {
	if d == nil {
		return fallback
	}
	return d.String() + suffix
}

func moneyOr(d *decimal.Decimal, fallback string) string {
	if d == nil {
		return fallback
	}
	return "$" + formatMoney(d.StringFixed(0))
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

package entity

// Departamento división DANE de primer nivel.
type Departamento struct {
	Codigo string
	Nombre string
}

// Municipio división DANE de segundo nivel.
type Municipio struct {
	Codigo             string
	Nombre             string
	CodigoDepartamento string
}

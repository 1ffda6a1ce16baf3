package dto

// DepartamentoResponse departamento del catálogo DANE.
type DepartamentoResponse struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// MunicipioResponse municipio del catálogo DANE.
type MunicipioResponse struct {
	Codigo             string `json:"codigo"`
	Nombre             string `json:"nombre"`
	CodigoDepartamento string `json:"codigo_departamento"`
}

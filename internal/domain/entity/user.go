package entity

import "time"

// DepartamentoDefault región por defecto de usuarios y bovinos.
const DepartamentoDefault = "Boyacá"

// User ganadero registrado. Vende y administra sus propios bovinos.
type User struct {
	ID            int64
	Nombre        string
	Apellidos     string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Telefono      *string
	Municipio     string
	Departamento  string
	FotoPerfil    *string
	Activo        bool
	FechaRegistro time.Time
}

// NombreCompleto nombre y apellidos separados por espacio.
func (u *User) NombreCompleto() string {
	if u.Apellidos == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellidos
}

package models

import "fmt"

// Roles an investigator can hold within a semillero.
const (
	TipoEstudiante = "estudiante"
	TipoTutor      = "tutor"
)

// Investigador represents a student or tutor attached to a semillero.
type Investigador struct {
	ID             int    `json:"id" db:"id"`
	Nombre         string `json:"nombre" db:"nombre"`
	Tipo           string `json:"tipo" db:"tipo"`
	Identificacion string `json:"identificacion" db:"identificacion"`
	Programa       string `json:"programa" db:"programa"`
	Email          string `json:"email" db:"email"`
	SemilleroID    int    `json:"semilleroId" db:"semillero_id"`
}

func (i Investigador) String() string {
	return fmt.Sprintf("%s (%s)", i.Nombre, i.Email)
}

// NormalizarMiembro converts any of the accepted member input shapes
// into a canonical Investigador row tagged with the given role:
//   - a pre-built Investigador (or pointer to one),
//   - a map carrying "nombre" and "email" keys,
//   - a bare name string.
func NormalizarMiembro(miembro any, tipo string, semilleroID int) Investigador {
	switch m := miembro.(type) {
	case Investigador:
		m.Tipo = tipo
		m.SemilleroID = semilleroID
		return m
	case *Investigador:
		inv := *m
		inv.Tipo = tipo
		inv.SemilleroID = semilleroID
		return inv
	case map[string]string:
		return Investigador{
			Nombre:      m["nombre"],
			Email:       m["email"],
			Tipo:        tipo,
			SemilleroID: semilleroID,
		}
	case map[string]any:
		nombre, _ := m["nombre"].(string)
		email, _ := m["email"].(string)
		return Investigador{
			Nombre:      nombre,
			Email:       email,
			Tipo:        tipo,
			SemilleroID: semilleroID,
		}
	default:
		return Investigador{
			Nombre:      fmt.Sprint(m),
			Tipo:        tipo,
			SemilleroID: semilleroID,
		}
	}
}

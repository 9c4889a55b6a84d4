package models

import (
	"fmt"
	"strings"
)

// States a semillero can be in. Transitions are freely reversible.
const (
	StatusPendiente = "pendiente"
	StatusActivo    = "activo"
)

// EsStatusValido reports whether status belongs to the semillero
// status catalog.
func EsStatusValido(status string) bool {
	return status == StatusPendiente || status == StatusActivo
}

// Semillero represents a student research seedbed affiliated with one
// research group. Estudiantes and Tutores accept any of the member
// input shapes NormalizarMiembro understands; after a load from the
// database they hold Investigador values.
type Semillero struct {
	ID                   int      `json:"id" db:"semillero_id"`
	Nombre               string   `json:"nombre" db:"nombre"`
	ObjetivoPrincipal    string   `json:"objetivoPrincipal" db:"objetivo_principal"`
	ObjetivosEspecificos []string `json:"objetivosEspecificos" db:"objetivos_especificos"`
	GrupoID              int      `json:"grupoId" db:"grupo_id"`
	Status               string   `json:"status" db:"status"`

	Estudiantes []any  `json:"estudiantes"`
	Tutores     []any  `json:"tutores"`
	GrupoNombre string `json:"grupoNombre"`
}

func (s Semillero) String() string {
	return fmt.Sprintf("%s - %s", s.Nombre, strings.ToUpper(s.Status))
}

// Validar checks the semillero against the creation rules and returns
// one human-readable message per violation. An empty slice means the
// semillero is valid.
func (s *Semillero) Validar() []string {
	errores := []string{}

	if s.Nombre == "" {
		errores = append(errores, "El nombre del semillero es obligatorio")
	}
	if s.ObjetivoPrincipal == "" {
		errores = append(errores, "El objetivo principal es obligatorio")
	}
	if len(s.ObjetivosEspecificos) == 0 {
		errores = append(errores, "Debe tener al menos un objetivo específico")
	}
	if s.GrupoID == 0 {
		errores = append(errores, "Debe estar adscrito a un grupo de investigación")
	}

	if len(s.Estudiantes) < 2 {
		errores = append(errores, "Debe tener al menos dos estudiantes")
	}
	if len(s.Tutores) < 1 || len(s.Tutores) > 2 {
		errores = append(errores, "Debe tener uno o dos tutores")
	}

	return errores
}

// Detalles returns the full printable description of the semillero.
func (s *Semillero) Detalles() string {
	grupo := s.GrupoNombre
	if grupo == "" {
		grupo = "No asignado"
	}

	lineas := []string{
		fmt.Sprintf("NOMBRE: %s", s.Nombre),
		fmt.Sprintf("ESTADO: %s", strings.ToUpper(s.Status)),
		fmt.Sprintf("OBJETIVO PRINCIPAL: %s", s.ObjetivoPrincipal),
		fmt.Sprintf("GRUPO DE INVESTIGACIÓN: %s", grupo),
		"",
		"OBJETIVOS ESPECÍFICOS:",
	}
	for i, objetivo := range s.ObjetivosEspecificos {
		lineas = append(lineas, fmt.Sprintf("  %d. %s", i+1, objetivo))
	}

	lineas = append(lineas, "", "ESTUDIANTES:")
	for _, estudiante := range s.Estudiantes {
		lineas = append(lineas, fmt.Sprintf("  - %v", estudiante))
	}
	lineas = append(lineas, "", "TUTORES:")
	for _, tutor := range s.Tutores {
		lineas = append(lineas, fmt.Sprintf("  - %v", tutor))
	}

	return strings.Join(lineas, "\n")
}

package models

import "fmt"

// Grupo represents a research group in the database.
type Grupo struct {
	ID            int    `json:"id" db:"id"`
	Nombre        string `json:"nombre" db:"nombre"`
	Campo         string `json:"campo" db:"campo"`
	Identificador string `json:"identificador" db:"identificador"`
	Director      string `json:"director" db:"director"`
}

func (g Grupo) String() string {
	return fmt.Sprintf("%s - %s", g.Nombre, g.Identificador)
}

// Detalles returns the full printable description of the group.
func (g Grupo) Detalles() string {
	return fmt.Sprintf("NOMBRE: %s\nCAMPO: %s\nIDENTIFICADOR: %s\nDIRECTOR: %s",
		g.Nombre, g.Campo, g.Identificador, g.Director)
}

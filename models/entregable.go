package models

import (
	"fmt"
	"strings"
)

// TiposEntregable is the fixed catalog of deliverable types.
var TiposEntregable = []string{
	"Artículo científico",
	"Working paper",
	"Boletín divulgativo",
	"Evento científico",
	"Prototipo",
}

// States a deliverable can be in. Transitions are freely reversible.
const (
	EstadoPendiente = "pendiente"
	EstadoAprobado  = "aprobado"
	EstadoRechazado = "rechazado"
)

// EstadosEntregable lists the valid deliverable states.
var EstadosEntregable = []string{EstadoPendiente, EstadoAprobado, EstadoRechazado}

// EsTipoEntregableValido reports whether tipo belongs to the
// deliverable type catalog.
func EsTipoEntregableValido(tipo string) bool {
	for _, t := range TiposEntregable {
		if t == tipo {
			return true
		}
	}
	return false
}

// EsEstadoEntregableValido reports whether estado belongs to the
// deliverable state catalog.
func EsEstadoEntregableValido(estado string) bool {
	for _, e := range EstadosEntregable {
		if e == estado {
			return true
		}
	}
	return false
}

// Entregable represents the single output artifact tracked per
// semillero.
type Entregable struct {
	ID           int    `json:"id" db:"id"`
	Titulo       string `json:"titulo" db:"titulo"`
	Descripcion  string `json:"descripcion" db:"descripcion"`
	Tipo         string `json:"tipo" db:"tipo"`
	SemilleroID  int    `json:"semilleroId" db:"semillero_id"`
	FechaEntrega string `json:"fechaEntrega" db:"fecha_entrega"`
	Estado       string `json:"estado" db:"estado"`

	SemilleroNombre string `json:"semilleroNombre"`
}

func (e Entregable) String() string {
	return fmt.Sprintf("%s - %s (%s)", e.Titulo, e.Tipo, strings.ToUpper(e.Estado))
}

// Validar checks the entregable against the creation rules and returns
// one human-readable message per violation.
func (e *Entregable) Validar() []string {
	errores := []string{}

	if e.Titulo == "" {
		errores = append(errores, "El título del entregable es obligatorio")
	}
	if e.Descripcion == "" {
		errores = append(errores, "La descripción del entregable es obligatoria")
	}
	if e.Tipo == "" {
		errores = append(errores, "El tipo de entregable es obligatorio")
	} else if !EsTipoEntregableValido(e.Tipo) {
		errores = append(errores, "El tipo de entregable debe ser uno de: "+strings.Join(TiposEntregable, ", "))
	}
	if e.SemilleroID == 0 {
		errores = append(errores, "Debe estar asociado a un semillero")
	}

	return errores
}

// Detalles returns the full printable description of the entregable.
func (e *Entregable) Detalles() string {
	semillero := e.SemilleroNombre
	if semillero == "" {
		semillero = "No asignado"
	}
	fecha := e.FechaEntrega
	if fecha == "" {
		fecha = "No definida"
	}

	return strings.Join([]string{
		fmt.Sprintf("TÍTULO: %s", e.Titulo),
		fmt.Sprintf("TIPO: %s", e.Tipo),
		fmt.Sprintf("ESTADO: %s", strings.ToUpper(e.Estado)),
		fmt.Sprintf("SEMILLERO: %s", semillero),
		fmt.Sprintf("FECHA DE ENTREGA: %s", fecha),
		"",
		fmt.Sprintf("DESCRIPCIÓN: %s", e.Descripcion),
	}, "\n")
}

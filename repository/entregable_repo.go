package repository

import (
	"strings"
	"time"

	"github.com/kelydev/semilleros/database"
	"github.com/kelydev/semilleros/models"
)

// CreateEntregable persists the deliverable of a semillero. A
// semillero can hold exactly one deliverable; a second creation is
// rejected before touching storage (first one wins). FechaEntrega
// defaults to today when unset.
func CreateEntregable(store *database.Store, e *models.Entregable) (bool, string) {
	if errores := e.Validar(); len(errores) > 0 {
		return false, strings.Join(errores, "; ")
	}

	row, err := store.FetchOne(`SELECT COUNT(*) AS total FROM entregables WHERE semillero_id = ?`, e.SemilleroID)
	if err != nil {
		return false, "Error al verificar los entregables del semillero"
	}
	if row.Int("total") > 0 {
		return false, "Este semillero ya tiene un entregable asignado"
	}

	if e.FechaEntrega == "" {
		e.FechaEntrega = time.Now().Format("2006-01-02")
	}
	if e.Estado == "" {
		e.Estado = models.EstadoPendiente
	}

	id, _, err := store.Exec(
		`INSERT INTO entregables (titulo, descripcion, tipo, semillero_id, fecha_entrega, estado)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Titulo, e.Descripcion, e.Tipo, e.SemilleroID, e.FechaEntrega, e.Estado,
	)
	if err != nil {
		return false, "Error al crear el entregable"
	}
	e.ID = int(id)

	return true, "Entregable creado correctamente"
}

// GetEntregableBySemillero retrieves the deliverable of a semillero
// with the semillero name attached. Returns (nil, nil) when the
// semillero has no deliverable.
func GetEntregableBySemillero(store *database.Store, semilleroID int) (*models.Entregable, error) {
	row, err := store.FetchOne(
		`SELECT e.id, e.titulo, e.descripcion, e.tipo, e.semillero_id, e.fecha_entrega, e.estado,
		        s.nombre AS semillero_nombre
		 FROM entregables e
		 LEFT JOIN semilleros s ON e.semillero_id = s.semillero_id
		 WHERE e.semillero_id = ?`, semilleroID,
	)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	return &models.Entregable{
		ID:              row.Int("id"),
		Titulo:          row.Text("titulo"),
		Descripcion:     row.Text("descripcion"),
		Tipo:            row.Text("tipo"),
		SemilleroID:     row.Int("semillero_id"),
		FechaEntrega:    row.Text("fecha_entrega"),
		Estado:          row.Text("estado"),
		SemilleroNombre: row.Text("semillero_nombre"),
	}, nil
}

// ChangeEntregableStatus updates the state of a deliverable. A state
// outside the catalog is rejected without touching storage.
func ChangeEntregableStatus(store *database.Store, entregableID int, nuevoEstado string) (bool, string) {
	if !models.EsEstadoEntregableValido(nuevoEstado) {
		return false, "Estado no válido. Debe ser uno de: " + strings.Join(models.EstadosEntregable, ", ")
	}

	if _, _, err := store.Exec(`UPDATE entregables SET estado = ? WHERE id = ?`, nuevoEstado, entregableID); err != nil {
		return false, "Error al actualizar el estado del entregable"
	}
	return true, "Estado del entregable actualizado a: " + nuevoEstado
}

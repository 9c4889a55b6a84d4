package repository

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/kelydev/semilleros/database"
	"github.com/kelydev/semilleros/models"
)

// ValidateSemillero checks the semillero against the creation rules,
// including that its group reference resolves to an existing group.
// Returns one message per violation; empty means valid.
func ValidateSemillero(store *database.Store, s *models.Semillero) []string {
	errores := s.Validar()

	if s.GrupoID != 0 {
		grupo, err := GetGrupoByID(store, s.GrupoID)
		if err != nil {
			errores = append(errores, "No fue posible verificar el grupo de investigación")
		} else if grupo == nil {
			errores = append(errores, "El grupo de investigación indicado no existe")
		}
	}

	return errores
}

// CreateSemillero validates and persists a new semillero together with
// its estudiantes and tutores. On any violation nothing is written and
// the violations are returned. On success the new id is returned with
// an empty violation list.
func CreateSemillero(store *database.Store, s *models.Semillero) (int, []string) {
	errores := ValidateSemillero(store, s)
	if len(errores) > 0 {
		return 0, errores
	}

	if s.Status == "" {
		s.Status = models.StatusPendiente
	}
	objetivosJSON, err := json.Marshal(s.ObjetivosEspecificos)
	if err != nil {
		return 0, []string{"Error al crear el semillero en la base de datos"}
	}

	id, _, err := store.Exec(
		`INSERT INTO semilleros (nombre, objetivo_principal, objetivos_especificos, grupo_id, status)
		 VALUES (?, ?, ?, ?, ?)`,
		s.Nombre, s.ObjetivoPrincipal, string(objetivosJSON), s.GrupoID, s.Status,
	)
	if err != nil {
		log.Printf("error inserting semillero: %v", err)
		return 0, []string{"Error al crear el semillero en la base de datos"}
	}
	s.ID = int(id)

	if err := saveInvestigadores(store, s.ID, s.Estudiantes, models.TipoEstudiante); err != nil {
		log.Printf("Warning: could not save estudiantes of semillero %d: %v", s.ID, err)
	}
	if err := saveInvestigadores(store, s.ID, s.Tutores, models.TipoTutor); err != nil {
		log.Printf("Warning: could not save tutores of semillero %d: %v", s.ID, err)
	}

	return s.ID, []string{}
}

// saveInvestigadores normalizes the member inputs and bulk-inserts
// them as investigador rows scoped to the semillero.
func saveInvestigadores(store *database.Store, semilleroID int, miembros []any, tipo string) error {
	if len(miembros) == 0 {
		return nil
	}

	paramSets := make([][]any, 0, len(miembros))
	for _, miembro := range miembros {
		inv := models.NormalizarMiembro(miembro, tipo, semilleroID)
		paramSets = append(paramSets, []any{
			inv.Nombre, inv.Tipo, inv.Identificacion, inv.Programa, inv.Email, semilleroID,
		})
	}

	return store.ExecBatch(
		`INSERT INTO investigadores (nombre, tipo, identificacion, programa, email, semillero_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		paramSets,
	)
}

// GetAllSemilleros retrieves every semillero with its group name, the
// decoded objetivos list and its investigadores partitioned into
// estudiantes and tutores, ordered by name.
func GetAllSemilleros(store *database.Store) ([]models.Semillero, error) {
	rows, err := store.FetchAll(
		`SELECT s.semillero_id, s.nombre, s.objetivo_principal, s.objetivos_especificos,
		        s.grupo_id, g.nombre AS grupo_nombre, s.status
		 FROM semilleros s
		 LEFT JOIN grupos_investigacion g ON s.grupo_id = g.id
		 ORDER BY s.nombre`,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying semilleros: %w", err)
	}

	semilleros := []models.Semillero{}
	for _, row := range rows {
		sem, err := semilleroFromRow(row)
		if err != nil {
			return nil, err
		}
		if err := loadInvestigadores(store, sem); err != nil {
			return nil, err
		}
		semilleros = append(semilleros, *sem)
	}
	return semilleros, nil
}

// GetSemilleroByID retrieves a single semillero with its group and
// investigadores. The join is inner: a semillero whose group is gone
// comes back as not found. Returns (nil, nil) when not found.
func GetSemilleroByID(store *database.Store, id int) (*models.Semillero, error) {
	row, err := store.FetchOne(
		`SELECT s.semillero_id, s.nombre, s.objetivo_principal, s.objetivos_especificos,
		        s.grupo_id, s.status, g.nombre AS grupo_nombre
		 FROM semilleros s
		 JOIN grupos_investigacion g ON s.grupo_id = g.id
		 WHERE s.semillero_id = ?`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error getting semillero by ID: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	sem, err := semilleroFromRow(row)
	if err != nil {
		return nil, err
	}
	if err := loadInvestigadores(store, sem); err != nil {
		return nil, err
	}
	return sem, nil
}

// GetSemillerosByGrupo retrieves the semilleros attached to a group,
// ordered by name. Investigadores are not loaded for listings.
func GetSemillerosByGrupo(store *database.Store, grupoID int) ([]models.Semillero, error) {
	rows, err := store.FetchAll(
		`SELECT s.semillero_id, s.nombre, s.objetivo_principal, s.objetivos_especificos,
		        s.grupo_id, s.status, g.nombre AS grupo_nombre
		 FROM semilleros s
		 JOIN grupos_investigacion g ON s.grupo_id = g.id
		 WHERE s.grupo_id = ?
		 ORDER BY s.nombre`, grupoID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying semilleros by group: %w", err)
	}

	semilleros := []models.Semillero{}
	for _, row := range rows {
		sem, err := semilleroFromRow(row)
		if err != nil {
			return nil, err
		}
		semilleros = append(semilleros, *sem)
	}
	return semilleros, nil
}

// EditSemillero replaces every editable field of an existing
// semillero. Callers are responsible for checking the group exists
// and the status is valid beforehand; unlike CreateSemillero this
// performs no validation. Returns whether at least one row changed.
func EditSemillero(store *database.Store, id int, nombre, objetivoPrincipal string, objetivosEspecificos []string, grupoID int, status string) (bool, error) {
	objetivosJSON, err := json.Marshal(objetivosEspecificos)
	if err != nil {
		return false, fmt.Errorf("error encoding objetivos específicos: %w", err)
	}

	_, affected, err := store.Exec(
		`UPDATE semilleros
		 SET nombre = ?, objetivo_principal = ?, objetivos_especificos = ?, grupo_id = ?, status = ?
		 WHERE semillero_id = ?`,
		nombre, objetivoPrincipal, string(objetivosJSON), grupoID, status, id,
	)
	if err != nil {
		return false, fmt.Errorf("error updating semillero: %w", err)
	}
	return affected > 0, nil
}

// DeleteSemillero removes a semillero and its investigadores. The
// investigador half is best-effort: a failure there is logged and the
// semillero delete is still attempted. Returns whether the semillero
// row itself was removed.
func DeleteSemillero(store *database.Store, id int) (bool, error) {
	if _, _, err := store.Exec(`DELETE FROM investigadores WHERE semillero_id = ?`, id); err != nil {
		log.Printf("Warning: could not delete investigadores of semillero %d: %v", id, err)
	}

	_, affected, err := store.Exec(`DELETE FROM semilleros WHERE semillero_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting semillero: %w", err)
	}
	return affected > 0, nil
}

// ChangeSemilleroStatus updates the status of a semillero. A status
// outside the catalog is rejected without touching storage.
func ChangeSemilleroStatus(store *database.Store, id int, status string) (bool, error) {
	if !models.EsStatusValido(status) {
		return false, nil
	}

	_, affected, err := store.Exec(`UPDATE semilleros SET status = ? WHERE semillero_id = ?`, status, id)
	if err != nil {
		return false, fmt.Errorf("error updating semillero status: %w", err)
	}
	return affected > 0, nil
}

func semilleroFromRow(row database.Row) (*models.Semillero, error) {
	objetivos := []string{}
	if raw := row.Text("objetivos_especificos"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &objetivos); err != nil {
			return nil, fmt.Errorf("error decoding objetivos específicos: %w", err)
		}
	}

	return &models.Semillero{
		ID:                   row.Int("semillero_id"),
		Nombre:               row.Text("nombre"),
		ObjetivoPrincipal:    row.Text("objetivo_principal"),
		ObjetivosEspecificos: objetivos,
		GrupoID:              row.Int("grupo_id"),
		Status:               row.Text("status"),
		GrupoNombre:          row.Text("grupo_nombre"),
	}, nil
}

// loadInvestigadores fills the semillero with its investigadores,
// partitioned by role and ordered by name within each role.
func loadInvestigadores(store *database.Store, s *models.Semillero) error {
	rows, err := store.FetchAll(
		`SELECT id, nombre, tipo, identificacion, programa, email
		 FROM investigadores
		 WHERE semillero_id = ?
		 ORDER BY tipo, nombre`, s.ID,
	)
	if err != nil {
		return fmt.Errorf("error querying investigadores of semillero: %w", err)
	}

	for _, row := range rows {
		inv := models.Investigador{
			ID:             row.Int("id"),
			Nombre:         row.Text("nombre"),
			Tipo:           row.Text("tipo"),
			Identificacion: row.Text("identificacion"),
			Programa:       row.Text("programa"),
			Email:          row.Text("email"),
			SemilleroID:    s.ID,
		}
		switch inv.Tipo {
		case models.TipoEstudiante:
			s.Estudiantes = append(s.Estudiantes, inv)
		case models.TipoTutor:
			s.Tutores = append(s.Tutores, inv)
		}
	}
	return nil
}

package repository

import (
	"fmt"

	"github.com/kelydev/semilleros/database"
	"github.com/kelydev/semilleros/models"
)

// CreateGrupo inserts a new research group and returns its ID.
func CreateGrupo(store *database.Store, g *models.Grupo) (int, error) {
	id, _, err := store.Exec(
		`INSERT INTO grupos_investigacion (nombre, campo, identificador, director) VALUES (?, ?, ?, ?)`,
		g.Nombre, g.Campo, g.Identificador, g.Director,
	)
	if err != nil {
		return 0, fmt.Errorf("error inserting group: %w", err)
	}
	g.ID = int(id)
	return g.ID, nil
}

// GetAllGrupos retrieves every research group ordered by name.
func GetAllGrupos(store *database.Store) ([]models.Grupo, error) {
	rows, err := store.FetchAll(
		`SELECT id, nombre, campo, identificador, director FROM grupos_investigacion ORDER BY nombre`,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying groups: %w", err)
	}

	grupos := []models.Grupo{}
	for _, row := range rows {
		grupos = append(grupos, grupoFromRow(row))
	}
	return grupos, nil
}

// GetGrupoByID retrieves a single group by its ID. Returns (nil, nil)
// when not found.
func GetGrupoByID(store *database.Store, id int) (*models.Grupo, error) {
	row, err := store.FetchOne(
		`SELECT g.id, g.nombre, g.campo, g.identificador, g.director
		 FROM grupos_investigacion g
		 WHERE g.id = ?`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error getting group by ID: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	g := grupoFromRow(row)
	return &g, nil
}

// GetGrupoByIdentificador retrieves a single group by its unique
// identifier string. Returns (nil, nil) when not found.
func GetGrupoByIdentificador(store *database.Store, identificador string) (*models.Grupo, error) {
	row, err := store.FetchOne(
		`SELECT g.id, g.nombre, g.campo, g.identificador, g.director
		 FROM grupos_investigacion g
		 WHERE g.identificador = ?`, identificador,
	)
	if err != nil {
		return nil, fmt.Errorf("error getting group by identifier: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	g := grupoFromRow(row)
	return &g, nil
}

// Catálogo inicial de grupos de investigación.
// Datos obtenidos de https://universidadean.edu.co/investigacion/grupos-de-investigacion
var gruposIniciales = [][]any{
	{"ENTREPRENEURSHIP GROUP", "Emprendimiento y gerencia", "COL0011599", "LEON DARIO PARRA BERNAL"},
	{"GRUPO DE INVESTIGACIÓN EN AMBIENTES SOSTENIBLES", "Sostenibilidad", "COL0188929", "YESID ALEXANDER MUÑOZ LOZANO"},
	{"GRUPO DE INVESTIGACIÓN EN INGENIERÍA DE PROCESOS", "Ingeniería de procesos", "COL0033962", "JAVIER DARIO MEJIA SAENZ"},
	{"ONTARE", "Tecnologías de información", "COL0007814", "RICARDO BUITRAGO PULIDO"},
	{"COMUNICACIÓN Y APRENDIZAJE", "Educación", "COL0026909", "CLAUDIA PATRICIA VILLAFAÑE BUSTOS"},
	{"CULTURA Y GESTIÓN SOCIAL", "Humanidades", "COL0050898", "LUIS ALFREDO VARGAS PINTO"},
	{"LINGÜÍSTICA Y COMUNICACIÓN", "Lingüística", "COL0082400", "MARÍA TERESA GÓMEZ LOZANO"},
	{"GESTIÓN DEL CONOCIMIENTO", "Conocimiento e información", "COL0110523", "MONICA BIBIANA GONZALEZ CALIXTO"},
}

// SeedGrupos bulk-loads the fixed group catalogue when the table is
// empty. Returns the number of groups inserted; 0 means the data was
// already there. First-run bootstrap only.
func SeedGrupos(store *database.Store) (int, error) {
	row, err := store.FetchOne(`SELECT COUNT(*) AS total FROM grupos_investigacion`)
	if err != nil {
		return 0, fmt.Errorf("error counting groups: %w", err)
	}
	if row.Int("total") > 0 {
		return 0, nil
	}

	err = store.ExecBatch(
		`INSERT INTO grupos_investigacion (nombre, campo, identificador, director) VALUES (?, ?, ?, ?)`,
		gruposIniciales,
	)
	if err != nil {
		return 0, fmt.Errorf("error seeding groups: %w", err)
	}
	return len(gruposIniciales), nil
}

// Líneas de investigación por grupo. Static reference data standing in
// for a future external catalogue; not persisted.
var lineasPorGrupo = map[int][]string{
	1: {"Emprendimiento sostenible", "Gestión de la innovación", "Desarrollo empresarial"},
	2: {"Construcción sostenible", "Energías renovables", "Gestión ambiental"},
	3: {"Optimización de procesos", "Ingeniería de materiales", "Biotecnología"},
	4: {"Inteligencia artificial", "Desarrollo de software", "Seguridad informática"},
	5: {"Pedagogía virtual", "Aprendizaje basado en proyectos", "Competencias digitales"},
	6: {"Estudios culturales", "Responsabilidad social", "Impacto comunitario"},
	7: {"Lingüística aplicada", "Comunicación organizacional", "Análisis del discurso"},
	8: {"Gestión del conocimiento", "Sistemas de información", "Aprendizaje organizacional"},
}

// GetLineasInvestigacion returns the research lines associated with a
// group. Unknown group ids get a one-element placeholder.
func GetLineasInvestigacion(grupoID int) []string {
	if lineas, ok := lineasPorGrupo[grupoID]; ok {
		return lineas
	}
	return []string{"No hay líneas de investigación registradas"}
}

func grupoFromRow(row database.Row) models.Grupo {
	return models.Grupo{
		ID:            row.Int("id"),
		Nombre:        row.Text("nombre"),
		Campo:         row.Text("campo"),
		Identificador: row.Text("identificador"),
		Director:      row.Text("director"),
	}
}

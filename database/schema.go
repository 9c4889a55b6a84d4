package database

import (
	"fmt"
	"log"
)

func schemaDDL() []string {
	return []string{
		// Tabla de grupos de investigación
		`CREATE TABLE IF NOT EXISTS grupos_investigacion (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre TEXT NOT NULL,
			facultad TEXT,
			area_conocimiento TEXT,
			director TEXT,
			campo TEXT,
			identificador TEXT
		)`,

		// Tabla de semilleros
		`CREATE TABLE IF NOT EXISTS semilleros (
			semillero_id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre TEXT NOT NULL,
			objetivo_principal TEXT,
			objetivos_especificos TEXT,
			grupo_id INTEGER,
			status TEXT DEFAULT 'pendiente',
			FOREIGN KEY (grupo_id) REFERENCES grupos_investigacion(id)
		)`,

		// Tabla de investigadores
		`CREATE TABLE IF NOT EXISTS investigadores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre TEXT NOT NULL,
			tipo TEXT NOT NULL,
			identificacion TEXT,
			programa TEXT,
			email TEXT,
			semillero_id INTEGER,
			FOREIGN KEY (semillero_id) REFERENCES semilleros(semillero_id)
		)`,

		// Tabla de relación entre semilleros e investigadores.
		// Declarada por compatibilidad con el esquema original; los
		// investigadores se asocian vía investigadores.semillero_id.
		`CREATE TABLE IF NOT EXISTS semillero_investigador (
			semillero_id INTEGER,
			investigador_id INTEGER,
			rol TEXT,
			PRIMARY KEY (semillero_id, investigador_id),
			FOREIGN KEY (semillero_id) REFERENCES semilleros(semillero_id),
			FOREIGN KEY (investigador_id) REFERENCES investigadores(id)
		)`,

		// Tabla de entregables
		`CREATE TABLE IF NOT EXISTS entregables (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			titulo TEXT NOT NULL,
			descripcion TEXT,
			tipo TEXT NOT NULL,
			semillero_id INTEGER NOT NULL,
			fecha_entrega TEXT,
			estado TEXT DEFAULT 'pendiente',
			FOREIGN KEY (semillero_id) REFERENCES semilleros(semillero_id)
		)`,
	}
}

// createStructure creates the tables when the database is new. Running
// it on an existing database is a no-op.
func (s *Store) createStructure() error {
	for _, ddl := range schemaDDL() {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("error creating database structure: %w", err)
		}
	}
	return nil
}

// verifyStructure applies the additive migrations an older database
// may need. A failed migration is logged but never aborts startup:
// keeping existing data reachable matters more than a strict schema.
func (s *Store) verifyStructure() {
	columnas, err := s.FetchAll(`PRAGMA table_info(semilleros)`)
	if err != nil {
		log.Printf("Warning: could not inspect semilleros structure: %v", err)
		return
	}

	for _, col := range columnas {
		if col.Text("name") == "objetivo_principal" {
			return
		}
	}

	if _, _, err := s.Exec(`ALTER TABLE semilleros ADD COLUMN objetivo_principal TEXT NOT NULL DEFAULT ''`); err != nil {
		log.Printf("Error updating database structure: %v", err)
		return
	}
	log.Print("database updated: added objetivo_principal column to semilleros")
}

package database

import (
	"database/sql"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Row maps column names to the values scanned for one result row.
type Row map[string]any

// Int returns the named column as an int, tolerating the integer
// widths the driver may hand back. NULL and missing columns are 0.
func (r Row) Int(col string) int {
	switch v := r[col].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Text returns the named column as a string. NULL becomes "".
func (r Row) Text(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// FetchOne executes query with positional parameters and returns the
// first result row, or (nil, nil) when nothing matches.
func (s *Store) FetchOne(query string, params ...any) (Row, error) {
	rows, err := s.db.Query(query, params...)
	if err != nil {
		s.diagnoseMissingColumn(query, err)
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading result columns: %w", err)
	}
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading result row: %w", err)
		}
		return nil, nil
	}
	return scanRow(rows, cols)
}

// FetchAll executes query with positional parameters and returns every
// result row. The slice is empty, never nil, when nothing matches.
func (s *Store) FetchAll(query string, params ...any) ([]Row, error) {
	rows, err := s.db.Query(query, params...)
	if err != nil {
		s.diagnoseMissingColumn(query, err)
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading result columns: %w", err)
	}

	result := []Row{}
	for rows.Next() {
		row, err := scanRow(rows, cols)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating through result rows: %w", err)
	}
	return result, nil
}

// Exec executes an INSERT, UPDATE or DELETE statement and returns the
// auto-generated id of the affected insert and the number of rows the
// statement touched.
func (s *Store) Exec(query string, params ...any) (lastID int64, affected int64, err error) {
	res, err := s.db.Exec(query, params...)
	if err != nil {
		s.diagnoseMissingColumn(query, err)
		return 0, 0, err
	}
	lastID, _ = res.LastInsertId()
	affected, _ = res.RowsAffected()
	return lastID, affected, nil
}

// ExecBatch applies the same statement to every parameter tuple inside
// a single transaction, committing once at the end. Any failure rolls
// back the whole batch.
func (s *Store) ExecBatch(query string, paramSets [][]any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting batch transaction: %w", err)
	}
	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error preparing batch statement: %w", err)
	}
	defer stmt.Close()

	for _, params := range paramSets {
		if _, err := stmt.Exec(params...); err != nil {
			tx.Rollback()
			s.diagnoseMissingColumn(query, err)
			return fmt.Errorf("error executing batch statement: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing batch: %w", err)
	}
	return nil
}

func scanRow(rows *sql.Rows, cols []string) (Row, error) {
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("error scanning result row: %w", err)
	}
	row := make(Row, len(cols))
	for i, col := range cols {
		row[col] = values[i]
	}
	return row, nil
}

var missingColumnRe = regexp.MustCompile(`no such column: ?(\S+)`)

// diagnoseMissingColumn logs the actual column list of the table named
// in a "no such column" error, resolving a FROM-clause alias to the
// real table name when possible. Diagnostics only; the original error
// still reaches the caller unchanged.
func (s *Store) diagnoseMissingColumn(query string, err error) {
	m := missingColumnRe.FindStringSubmatch(err.Error())
	if m == nil {
		return
	}
	log.Printf("column error: %v", err)

	tabla := m[1]
	if i := strings.IndexByte(tabla, '.'); i >= 0 {
		tabla = tabla[:i]
	}
	if tabla == "" {
		return
	}

	tablaReal := tabla
	if fromRe, reErr := regexp.Compile(`(?i)FROM\s+(\w+)\s+` + regexp.QuoteMeta(tabla) + `\b`); reErr == nil {
		if match := fromRe.FindStringSubmatch(query); match != nil {
			tablaReal = match[1]
		} else if anyRe, reErr := regexp.Compile(`(?i)(\w+)\s+` + regexp.QuoteMeta(tabla) + `\b`); reErr == nil {
			if match := anyRe.FindStringSubmatch(query); match != nil {
				tablaReal = match[1]
			}
		}
	}

	columnas, qerr := s.FetchAll(`PRAGMA table_info(` + tablaReal + `)`)
	if qerr != nil {
		return
	}
	log.Printf("columns available in table %s:", tablaReal)
	for _, col := range columnas {
		log.Printf("- %s (%s)", col.Text("name"), col.Text("type"))
	}
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelydev/semilleros/database"
	"github.com/kelydev/semilleros/models"
)

func crearSemilleroDePrueba(t *testing.T, store *database.Store) int {
	t.Helper()
	grupoID := crearGrupoDePrueba(t, store, "ID1")
	id, errores := CreateSemillero(store, semilleroValido(grupoID))
	require.Empty(t, errores)
	return id
}

func TestCreateEntregableAndGetBySemillero(t *testing.T) {
	store := newTestStore(t)
	semilleroID := crearSemilleroDePrueba(t, store)

	e := &models.Entregable{
		Titulo:      "Resultados fase 1",
		Descripcion: "Primer informe del semillero",
		Tipo:        "Artículo científico",
		SemilleroID: semilleroID,
	}
	ok, mensaje := CreateEntregable(store, e)
	assert.True(t, ok)
	assert.Equal(t, "Entregable creado correctamente", mensaje)
	assert.NotZero(t, e.ID)
	assert.Equal(t, models.EstadoPendiente, e.Estado)
	assert.Equal(t, time.Now().Format("2006-01-02"), e.FechaEntrega)

	cargado, err := GetEntregableBySemillero(store, semilleroID)
	require.NoError(t, err)
	require.NotNil(t, cargado)
	assert.Equal(t, "Resultados fase 1", cargado.Titulo)
	assert.Equal(t, "S1", cargado.SemilleroNombre)
}

func TestCreateEntregableFirstOneWins(t *testing.T) {
	store := newTestStore(t)
	semilleroID := crearSemilleroDePrueba(t, store)

	primero := &models.Entregable{
		Titulo:      "Primero",
		Descripcion: "D1",
		Tipo:        "Prototipo",
		SemilleroID: semilleroID,
	}
	ok, _ := CreateEntregable(store, primero)
	require.True(t, ok)

	segundo := &models.Entregable{
		Titulo:      "Segundo",
		Descripcion: "D2",
		Tipo:        "Working paper",
		SemilleroID: semilleroID,
	}
	ok, mensaje := CreateEntregable(store, segundo)
	assert.False(t, ok)
	assert.Equal(t, "Este semillero ya tiene un entregable asignado", mensaje)

	assert.Equal(t, 1, contarFilas(t, store, "entregables"))

	cargado, err := GetEntregableBySemillero(store, semilleroID)
	require.NoError(t, err)
	require.NotNil(t, cargado)
	assert.Equal(t, "Primero", cargado.Titulo)
}

func TestCreateEntregableValidation(t *testing.T) {
	store := newTestStore(t)
	semilleroID := crearSemilleroDePrueba(t, store)

	ok, mensaje := CreateEntregable(store, &models.Entregable{
		Descripcion: "Sin título",
		Tipo:        "Prototipo",
		SemilleroID: semilleroID,
	})
	assert.False(t, ok)
	assert.Contains(t, mensaje, "El título del entregable es obligatorio")
	assert.Equal(t, 0, contarFilas(t, store, "entregables"))
}

func TestGetEntregableBySemilleroAbsent(t *testing.T) {
	store := newTestStore(t)
	semilleroID := crearSemilleroDePrueba(t, store)

	cargado, err := GetEntregableBySemillero(store, semilleroID)
	require.NoError(t, err)
	assert.Nil(t, cargado)
}

func TestChangeEntregableStatusRoundTrip(t *testing.T) {
	store := newTestStore(t)
	semilleroID := crearSemilleroDePrueba(t, store)

	e := &models.Entregable{
		Titulo:      "Informe",
		Descripcion: "D",
		Tipo:        "Boletín divulgativo",
		SemilleroID: semilleroID,
	}
	ok, _ := CreateEntregable(store, e)
	require.True(t, ok)

	ok, mensaje := ChangeEntregableStatus(store, e.ID, models.EstadoAprobado)
	assert.True(t, ok)
	assert.Equal(t, "Estado del entregable actualizado a: aprobado", mensaje)

	cargado, err := GetEntregableBySemillero(store, semilleroID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoAprobado, cargado.Estado)

	// Back to pendiente; no terminal state.
	ok, _ = ChangeEntregableStatus(store, e.ID, models.EstadoPendiente)
	assert.True(t, ok)

	cargado, err = GetEntregableBySemillero(store, semilleroID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoPendiente, cargado.Estado)
}

func TestChangeEntregableStatusRejectsUnknown(t *testing.T) {
	store := newTestStore(t)
	semilleroID := crearSemilleroDePrueba(t, store)

	e := &models.Entregable{
		Titulo:      "Informe",
		Descripcion: "D",
		Tipo:        "Evento científico",
		SemilleroID: semilleroID,
	}
	ok, _ := CreateEntregable(store, e)
	require.True(t, ok)

	ok, mensaje := ChangeEntregableStatus(store, e.ID, "foo")
	assert.False(t, ok)
	assert.Contains(t, mensaje, "Estado no válido")

	cargado, err := GetEntregableBySemillero(store, semilleroID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoPendiente, cargado.Estado)
}

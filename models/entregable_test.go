package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntregableValidar(t *testing.T) {
	e := &Entregable{
		Titulo:      "Artículo sobre energías renovables",
		Descripcion: "Borrador para revista indexada",
		Tipo:        "Artículo científico",
		SemilleroID: 1,
	}
	assert.Empty(t, e.Validar())
}

func TestEntregableValidarAcumulaViolaciones(t *testing.T) {
	errores := (&Entregable{}).Validar()

	assert.Contains(t, errores, "El título del entregable es obligatorio")
	assert.Contains(t, errores, "La descripción del entregable es obligatoria")
	assert.Contains(t, errores, "El tipo de entregable es obligatorio")
	assert.Contains(t, errores, "Debe estar asociado a un semillero")
}

func TestEntregableValidarTipoFueraDeCatalogo(t *testing.T) {
	e := &Entregable{
		Titulo:      "Título",
		Descripcion: "Descripción",
		Tipo:        "Tesis",
		SemilleroID: 1,
	}
	errores := e.Validar()
	assert.Len(t, errores, 1)
	assert.Contains(t, errores[0], "El tipo de entregable debe ser uno de:")
}

func TestCatalogosEntregable(t *testing.T) {
	for _, tipo := range TiposEntregable {
		assert.True(t, EsTipoEntregableValido(tipo))
	}
	assert.False(t, EsTipoEntregableValido("Tesis"))

	for _, estado := range EstadosEntregable {
		assert.True(t, EsEstadoEntregableValido(estado))
	}
	assert.False(t, EsEstadoEntregableValido("archivado"))
}

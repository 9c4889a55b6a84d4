package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func semilleroValido() *Semillero {
	return &Semillero{
		Nombre:               "Semillero Test",
		ObjetivoPrincipal:    "Objetivo principal de prueba",
		ObjetivosEspecificos: []string{"Objetivo específico 1"},
		GrupoID:              1,
		Estudiantes:          []any{"Ana", "Luis"},
		Tutores:              []any{"Dr. Pérez"},
	}
}

func TestSemilleroValidar(t *testing.T) {
	assert.Empty(t, semilleroValido().Validar())
}

func TestSemilleroValidarAcumulaViolaciones(t *testing.T) {
	errores := (&Semillero{}).Validar()

	assert.Contains(t, errores, "El nombre del semillero es obligatorio")
	assert.Contains(t, errores, "El objetivo principal es obligatorio")
	assert.Contains(t, errores, "Debe tener al menos un objetivo específico")
	assert.Contains(t, errores, "Debe estar adscrito a un grupo de investigación")
	assert.Contains(t, errores, "Debe tener al menos dos estudiantes")
	assert.Contains(t, errores, "Debe tener uno o dos tutores")
}

func TestSemilleroValidarCardinalidades(t *testing.T) {
	s := semilleroValido()
	s.Estudiantes = []any{"Ana"}
	assert.Contains(t, s.Validar(), "Debe tener al menos dos estudiantes")

	s = semilleroValido()
	s.Tutores = []any{"T1", "T2", "T3"}
	assert.Contains(t, s.Validar(), "Debe tener uno o dos tutores")

	s = semilleroValido()
	s.Tutores = []any{"T1", "T2"}
	assert.Empty(t, s.Validar())
}

func TestSemilleroString(t *testing.T) {
	s := Semillero{Nombre: "Semillero Test", Status: StatusPendiente}
	assert.Equal(t, "Semillero Test - PENDIENTE", s.String())
}

func TestEsStatusValido(t *testing.T) {
	assert.True(t, EsStatusValido(StatusPendiente))
	assert.True(t, EsStatusValido(StatusActivo))
	assert.False(t, EsStatusValido("archivado"))
}

func TestNormalizarMiembro(t *testing.T) {
	desdeStruct := NormalizarMiembro(Investigador{Nombre: "Ana", Email: "ana@uni.edu", Programa: "Ingeniería"}, TipoEstudiante, 7)
	assert.Equal(t, "Ana", desdeStruct.Nombre)
	assert.Equal(t, "ana@uni.edu", desdeStruct.Email)
	assert.Equal(t, "Ingeniería", desdeStruct.Programa)
	assert.Equal(t, TipoEstudiante, desdeStruct.Tipo)
	assert.Equal(t, 7, desdeStruct.SemilleroID)

	desdePuntero := NormalizarMiembro(&Investigador{Nombre: "Luis"}, TipoTutor, 7)
	assert.Equal(t, "Luis", desdePuntero.Nombre)
	assert.Equal(t, TipoTutor, desdePuntero.Tipo)

	desdeMapa := NormalizarMiembro(map[string]string{"nombre": "Eva", "email": "eva@uni.edu"}, TipoEstudiante, 3)
	assert.Equal(t, "Eva", desdeMapa.Nombre)
	assert.Equal(t, "eva@uni.edu", desdeMapa.Email)
	assert.Equal(t, 3, desdeMapa.SemilleroID)

	desdeMapaAny := NormalizarMiembro(map[string]any{"nombre": "Sara", "email": "sara@uni.edu"}, TipoTutor, 3)
	assert.Equal(t, "Sara", desdeMapaAny.Nombre)
	assert.Equal(t, "sara@uni.edu", desdeMapaAny.Email)

	desdeNombre := NormalizarMiembro("Carlos", TipoEstudiante, 9)
	assert.Equal(t, "Carlos", desdeNombre.Nombre)
	assert.Equal(t, "", desdeNombre.Email)
	assert.Equal(t, TipoEstudiante, desdeNombre.Tipo)
	assert.Equal(t, 9, desdeNombre.SemilleroID)
}

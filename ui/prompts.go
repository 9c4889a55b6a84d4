package ui

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/kelydev/semilleros/models"
)

func leerLinea(reader *bufio.Reader, etiqueta string) string {
	fmt.Print(etiqueta)
	linea, _ := reader.ReadString('\n')
	return strings.TrimSpace(linea)
}

func leerEntero(reader *bufio.Reader, etiqueta string) (int, bool) {
	valor, err := strconv.Atoi(leerLinea(reader, etiqueta))
	if err != nil {
		fmt.Println("Error: Debe ingresar un número válido.")
		return 0, false
	}
	return valor, true
}

func pausar(reader *bufio.Reader) {
	leerLinea(reader, "\nPresione Enter para continuar...")
}

func mostrarListaGrupos(grupos []models.Grupo) bool {
	if len(grupos) == 0 {
		fmt.Println("\nNo hay grupos de investigación registrados.")
		return false
	}

	fmt.Println("\n==== GRUPOS DE INVESTIGACIÓN DISPONIBLES ====")
	for _, grupo := range grupos {
		fmt.Printf("%d. %s\n", grupo.ID, grupo.Nombre)
	}
	fmt.Println(strings.Repeat("=", 45))
	return true
}

func mostrarDetallesGrupo(grupo *models.Grupo) {
	if grupo == nil {
		fmt.Println("\nNo se encontró el grupo solicitado")
		return
	}
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("DETALLES DEL GRUPO DE INVESTIGACIÓN")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println(grupo.Detalles())
	fmt.Println(strings.Repeat("=", 50))
}

func mostrarListaSemilleros(semilleros []models.Semillero) bool {
	if len(semilleros) == 0 {
		fmt.Println("\nNo hay semilleros disponibles.")
		return false
	}

	fmt.Println("\n=== LISTA DE SEMILLEROS ===")
	fmt.Printf("%-5s %-30s %-10s %-20s\n", "ID", "NOMBRE", "ESTADO", "GRUPO")
	fmt.Println(strings.Repeat("-", 70))
	for _, s := range semilleros {
		grupo := s.GrupoNombre
		if grupo == "" {
			grupo = "Grupo no encontrado"
		}
		fmt.Printf("%-5d %-30s %-10s %-20s\n", s.ID, s.Nombre, strings.ToUpper(s.Status), grupo)
	}
	fmt.Println(strings.Repeat("-", 70))
	fmt.Printf("Total de semilleros: %d\n", len(semilleros))
	return true
}

func mostrarDetallesSemillero(semillero *models.Semillero) {
	if semillero == nil {
		fmt.Println("\nNo se encontró el semillero solicitado")
		return
	}
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("DETALLES DEL SEMILLERO DE INVESTIGACIÓN")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(semillero.Detalles())
	fmt.Println(strings.Repeat("=", 60))
}

// solicitarMiembros reads "Nombre, Email" lines until the cardinality
// constraints are met. Each member comes back in the map shape the
// repository normalizes before persisting.
func solicitarMiembros(reader *bufio.Reader, minimo, maximo int) []any {
	miembros := []any{}
	for {
		entrada := leerLinea(reader, "- ")
		if entrada == "" {
			if len(miembros) >= minimo {
				break
			}
			fmt.Printf("Debe ingresar al menos %d (actualmente: %d)\n", minimo, len(miembros))
			continue
		}
		if maximo > 0 && len(miembros) >= maximo {
			fmt.Printf("Solo se permiten máximo %d\n", maximo)
			break
		}

		nombre, email, _ := strings.Cut(entrada, ",")
		miembros = append(miembros, map[string]string{
			"nombre": strings.TrimSpace(nombre),
			"email":  strings.TrimSpace(email),
		})
	}
	return miembros
}

// solicitarDatosSemillero walks the user through the creation form and
// returns the semillero ready for the repository, or nil on cancel.
func solicitarDatosSemillero(reader *bufio.Reader, grupos []models.Grupo) *models.Semillero {
	fmt.Println("\n==== CREAR NUEVO SEMILLERO ====")

	nombre := leerLinea(reader, "Nombre del semillero: ")
	if nombre == "" {
		fmt.Println("El nombre es obligatorio.")
		return nil
	}

	mostrarListaGrupos(grupos)
	grupoID, ok := leerEntero(reader, "\nIngrese el ID del grupo: ")
	if !ok {
		return nil
	}
	grupoValido := false
	for _, grupo := range grupos {
		if grupo.ID == grupoID {
			grupoValido = true
			break
		}
	}
	if !grupoValido {
		fmt.Printf("El grupo con ID %d no existe.\n", grupoID)
		return nil
	}

	objetivoPrincipal := leerLinea(reader, "Objetivo principal del semillero: ")
	if objetivoPrincipal == "" {
		fmt.Println("El objetivo principal es obligatorio.")
		return nil
	}

	fmt.Println("\nObjetivos específicos (ingrese uno por línea, línea vacía para terminar):")
	objetivos := []string{}
	for {
		objetivo := leerLinea(reader, "- ")
		if objetivo == "" {
			break
		}
		objetivos = append(objetivos, objetivo)
	}
	if len(objetivos) == 0 {
		fmt.Println("Debe ingresar al menos un objetivo específico.")
		return nil
	}

	fmt.Println("\nEstudiantes del semillero (ingrese uno por línea, línea vacía para terminar):")
	fmt.Println("Formato: Nombre, Email")
	estudiantes := solicitarMiembros(reader, 2, 0)

	fmt.Println("\nTutores del semillero (ingrese uno por línea, línea vacía para terminar):")
	fmt.Println("Formato: Nombre, Email")
	tutores := solicitarMiembros(reader, 1, 2)

	return &models.Semillero{
		Nombre:               nombre,
		ObjetivoPrincipal:    objetivoPrincipal,
		ObjetivosEspecificos: objetivos,
		GrupoID:              grupoID,
		Status:               models.StatusPendiente,
		Estudiantes:          estudiantes,
		Tutores:              tutores,
	}
}

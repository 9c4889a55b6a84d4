package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kelydev/semilleros/database"
	"github.com/kelydev/semilleros/models"
	"github.com/kelydev/semilleros/repository"
)

// Menu is the interactive terminal front end over the repositories.
type Menu struct {
	store  *database.Store
	reader *bufio.Reader
}

// NewMenu builds a menu reading from stdin.
func NewMenu(store *database.Store) *Menu {
	return &Menu{store: store, reader: bufio.NewReader(os.Stdin)}
}

// Run shows the main menu loop until the user exits.
func (m *Menu) Run() {
	for {
		fmt.Println("\n==== SISTEMA DE GESTIÓN DE GRUPOS DE INVESTIGACIÓN ====")
		fmt.Println("1. Gestionar Grupos de Investigación")
		fmt.Println("2. Gestionar Semilleros de Investigación")
		fmt.Println("0. Salir")
		fmt.Println(strings.Repeat("=", 56))

		switch leerLinea(m.reader, "Seleccione una opción: ") {
		case "1":
			m.menuGrupos()
		case "2":
			m.menuSemilleros()
		case "0":
			fmt.Println("Gracias por usar el sistema. ¡Hasta pronto!")
			return
		default:
			fmt.Println("Opción no válida. Intente de nuevo.")
		}
	}
}

func (m *Menu) menuGrupos() {
	for {
		fmt.Println("\n==== GESTIÓN DE GRUPOS DE INVESTIGACIÓN ====")
		fmt.Println("1. Listar todos los grupos")
		fmt.Println("2. Ver detalles de un grupo")
		fmt.Println("3. Ver semilleros de un grupo")
		fmt.Println("0. Volver al menú principal")
		fmt.Println(strings.Repeat("=", 45))

		switch leerLinea(m.reader, "Seleccione una opción: ") {
		case "1":
			m.listarGrupos()
		case "2":
			m.verDetallesGrupo()
		case "3":
			m.verSemillerosGrupo()
		case "0":
			return
		default:
			fmt.Println("Opción no válida. Intente de nuevo.")
		}
	}
}

func (m *Menu) menuSemilleros() {
	for {
		fmt.Println("\n==== GESTIÓN DE SEMILLEROS DE INVESTIGACIÓN ====")
		fmt.Println("1. Crear nuevo semillero")
		fmt.Println("2. Ver todos los semilleros")
		fmt.Println("3. Ver detalles de un semillero")
		fmt.Println("4. Cambiar estado de un semillero")
		fmt.Println("5. Asignar entregable a semillero")
		fmt.Println("6. Ver entregable de semillero")
		fmt.Println("0. Volver al menú principal")
		fmt.Println(strings.Repeat("=", 45))

		switch leerLinea(m.reader, "Seleccione una opción: ") {
		case "1":
			m.crearSemillero()
		case "2":
			m.listarSemilleros()
		case "3":
			m.verDetallesSemillero()
		case "4":
			m.cambiarEstadoSemillero()
		case "5":
			m.asignarEntregable()
		case "6":
			m.verEntregableSemillero()
		case "0":
			return
		default:
			fmt.Println("Opción no válida. Intente de nuevo.")
		}
	}
}

func (m *Menu) listarGrupos() {
	grupos, err := repository.GetAllGrupos(m.store)
	if err != nil {
		fmt.Printf("Error al consultar los grupos: %v\n", err)
		return
	}
	mostrarListaGrupos(grupos)
}

func (m *Menu) verDetallesGrupo() {
	grupos, err := repository.GetAllGrupos(m.store)
	if err != nil {
		fmt.Printf("Error al consultar los grupos: %v\n", err)
		return
	}
	if !mostrarListaGrupos(grupos) {
		return
	}

	grupoID, ok := leerEntero(m.reader, "\nIngrese el ID del grupo: ")
	if !ok {
		return
	}
	grupo, err := repository.GetGrupoByID(m.store, grupoID)
	if err != nil {
		fmt.Printf("Error al consultar el grupo: %v\n", err)
		return
	}
	mostrarDetallesGrupo(grupo)

	if grupo != nil {
		fmt.Println("\nLÍNEAS DE INVESTIGACIÓN:")
		for i, linea := range repository.GetLineasInvestigacion(grupo.ID) {
			fmt.Printf("%d. %s\n", i+1, linea)
		}
	}
}

func (m *Menu) verSemillerosGrupo() {
	grupos, err := repository.GetAllGrupos(m.store)
	if err != nil {
		fmt.Printf("Error al consultar los grupos: %v\n", err)
		return
	}
	if !mostrarListaGrupos(grupos) {
		return
	}

	grupoID, ok := leerEntero(m.reader, "\nIngrese el ID del grupo: ")
	if !ok {
		return
	}
	semilleros, err := repository.GetSemillerosByGrupo(m.store, grupoID)
	if err != nil {
		fmt.Printf("Error al consultar los semilleros: %v\n", err)
		return
	}
	if !mostrarListaSemilleros(semilleros) {
		fmt.Println("El grupo seleccionado no tiene semilleros asociados.")
	}
}

func (m *Menu) crearSemillero() {
	grupos, err := repository.GetAllGrupos(m.store)
	if err != nil {
		fmt.Printf("Error al consultar los grupos: %v\n", err)
		return
	}
	if len(grupos) == 0 {
		fmt.Println("No hay grupos de investigación disponibles para asociar el semillero.")
		return
	}

	semillero := solicitarDatosSemillero(m.reader, grupos)
	if semillero == nil {
		return
	}

	lineas := repository.GetLineasInvestigacion(semillero.GrupoID)
	fmt.Println("\nLíneas de investigación del grupo seleccionado:")
	for i, linea := range lineas {
		fmt.Printf("%d. %s\n", i+1, linea)
	}
	if strings.EqualFold(leerLinea(m.reader, "\n¿Desea añadir alguna línea como objetivo específico? (s/n): "), "s") {
		if indice, ok := leerEntero(m.reader, "Ingrese el número de la línea a añadir: "); ok && indice >= 1 && indice <= len(lineas) {
			semillero.ObjetivosEspecificos = append(semillero.ObjetivosEspecificos, lineas[indice-1])
			fmt.Printf("Línea añadida como objetivo específico: %s\n", lineas[indice-1])
		} else {
			fmt.Println("Número inválido, continuando sin añadir línea.")
		}
	}

	semilleroID, errores := repository.CreateSemillero(m.store, semillero)
	if semilleroID == 0 {
		fmt.Println("\nError al crear el semillero:")
		for _, e := range errores {
			fmt.Printf("- %s\n", e)
		}
		return
	}

	fmt.Printf("\n¡Semillero '%s' creado correctamente!\n", semillero.Nombre)
	creado, err := repository.GetSemilleroByID(m.store, semilleroID)
	if err != nil {
		fmt.Printf("Error al consultar el semillero creado: %v\n", err)
		return
	}
	mostrarDetallesSemillero(creado)
}

// listarSemilleros shows the listing and offers delete ('D') and edit
// ('E') on a selected semillero.
func (m *Menu) listarSemilleros() {
	semilleros, err := repository.GetAllSemilleros(m.store)
	if err != nil {
		fmt.Printf("Error al consultar los semilleros: %v\n", err)
		return
	}
	if !mostrarListaSemilleros(semilleros) {
		fmt.Println("\nNo hay semilleros registrados en el sistema.")
		pausar(m.reader)
		return
	}

	respuesta := strings.ToLower(leerLinea(m.reader,
		"\nSi desea eliminar un semillero presione 'D', si desea editar presione 'E',\nde lo contrario presione Enter para continuar: "))
	if respuesta == "" {
		return
	}
	if respuesta != "d" && respuesta != "e" {
		fmt.Println("Opción inválida. Solo 'D' para eliminar, 'E' para editar o Enter para cancelar.")
		return
	}

	semID, ok := leerEntero(m.reader, "Digite el identificador del semillero: ")
	if !ok {
		return
	}
	var seleccionado *models.Semillero
	for i := range semilleros {
		if semilleros[i].ID == semID {
			seleccionado = &semilleros[i]
			break
		}
	}
	if seleccionado == nil {
		fmt.Printf("No existe ningún semillero con ID = %d.\n", semID)
		return
	}

	if respuesta == "d" {
		m.eliminarSemillero(seleccionado)
	} else {
		m.editarSemillero(seleccionado)
	}
}

func (m *Menu) eliminarSemillero(s *models.Semillero) {
	confirmar := leerLinea(m.reader,
		fmt.Sprintf("¿Está seguro de que desea eliminar el semillero '%s' (ID %d)? (S/N): ", s.Nombre, s.ID))
	if !strings.EqualFold(confirmar, "s") {
		fmt.Println("Eliminación cancelada.")
		return
	}

	fmt.Println("Procediendo a eliminar el semillero...")
	eliminado, err := repository.DeleteSemillero(m.store, s.ID)
	if err != nil {
		fmt.Printf("Error al eliminar el semillero: %v\n", err)
		return
	}
	if eliminado {
		fmt.Printf("El semillero '%s' (ID %d) fue eliminado correctamente.\n", s.Nombre, s.ID)
	} else {
		fmt.Println("No se eliminó ningún semillero.")
	}
}

// editarSemillero is a full-field edit: empty answers keep the current
// value; group and status are pre-validated here because the
// repository edit does not re-validate.
func (m *Menu) editarSemillero(s *models.Semillero) {
	fmt.Printf("\n=== EDITAR SEMILLERO (ID %d) ===\n", s.ID)
	fmt.Println("Si deja un campo vacío, se mantendrá el valor anterior.")

	nombre := leerLinea(m.reader, fmt.Sprintf("Nuevo nombre (actual: '%s'): ", s.Nombre))
	if nombre == "" {
		nombre = s.Nombre
	}

	objetivoPrincipal := leerLinea(m.reader, fmt.Sprintf("Nuevo objetivo principal (actual: '%s'): ", s.ObjetivoPrincipal))
	if objetivoPrincipal == "" {
		objetivoPrincipal = s.ObjetivoPrincipal
	}

	fmt.Printf("Objetivos específicos actuales: %s\n", strings.Join(s.ObjetivosEspecificos, "; "))
	fmt.Println("Nuevos objetivos específicos (uno por línea, línea vacía para mantener los actuales):")
	objetivos := []string{}
	for {
		objetivo := leerLinea(m.reader, "- ")
		if objetivo == "" {
			break
		}
		objetivos = append(objetivos, objetivo)
	}
	if len(objetivos) == 0 {
		objetivos = s.ObjetivosEspecificos
	}

	grupoID := s.GrupoID
	if entrada := leerLinea(m.reader, fmt.Sprintf("Nuevo grupo_id (actual: %d): ", s.GrupoID)); entrada != "" {
		nuevo, err := strconv.Atoi(entrada)
		if err != nil {
			fmt.Println("ID de grupo inválido. Se mantiene el anterior.")
		} else if grupo, gerr := repository.GetGrupoByID(m.store, nuevo); gerr != nil || grupo == nil {
			fmt.Printf("Grupo con ID %d no existe. Se mantiene el anterior (%d).\n", nuevo, s.GrupoID)
		} else {
			grupoID = nuevo
		}
	}

	status := s.Status
	if entrada := strings.ToLower(leerLinea(m.reader, fmt.Sprintf("Nuevo status (actual: '%s'): ", s.Status))); entrada != "" {
		if models.EsStatusValido(entrada) {
			status = entrada
		} else {
			fmt.Println("Status inválido. Se mantiene el anterior.")
		}
	}

	fmt.Println("\nGuardando cambios...")
	actualizado, err := repository.EditSemillero(m.store, s.ID, nombre, objetivoPrincipal, objetivos, grupoID, status)
	if err != nil {
		fmt.Printf("Error interno al intentar editar: %v\n", err)
		return
	}
	if actualizado {
		fmt.Println("Semillero actualizado correctamente.")
	} else {
		fmt.Println("No se pudo actualizar el semillero.")
	}
}

func (m *Menu) verDetallesSemillero() {
	semilleros, err := repository.GetAllSemilleros(m.store)
	if err != nil {
		fmt.Printf("Error al consultar los semilleros: %v\n", err)
		return
	}
	if !mostrarListaSemilleros(semilleros) {
		return
	}

	semilleroID, ok := leerEntero(m.reader, "\nIngrese el ID del semillero: ")
	if !ok {
		return
	}
	semillero, err := repository.GetSemilleroByID(m.store, semilleroID)
	if err != nil {
		fmt.Printf("Error al consultar el semillero: %v\n", err)
		return
	}
	mostrarDetallesSemillero(semillero)
}

func (m *Menu) cambiarEstadoSemillero() {
	semilleros, err := repository.GetAllSemilleros(m.store)
	if err != nil {
		fmt.Printf("Error al consultar los semilleros: %v\n", err)
		return
	}
	if !mostrarListaSemilleros(semilleros) {
		return
	}

	semilleroID, ok := leerEntero(m.reader, "\nIngrese el ID del semillero: ")
	if !ok {
		return
	}
	semillero, err := repository.GetSemilleroByID(m.store, semilleroID)
	if err != nil {
		fmt.Printf("Error al consultar el semillero: %v\n", err)
		return
	}
	if semillero == nil {
		fmt.Println("Semillero no encontrado.")
		return
	}

	fmt.Printf("\nEl estado actual del semillero es: %s\n", strings.ToUpper(semillero.Status))
	nuevoEstado := models.StatusActivo
	if semillero.Status == models.StatusActivo {
		nuevoEstado = models.StatusPendiente
	}

	confirmacion := leerLinea(m.reader, fmt.Sprintf("¿Desea cambiar el estado a %s? (s/n): ", strings.ToUpper(nuevoEstado)))
	if !strings.EqualFold(confirmacion, "s") {
		return
	}

	cambiado, err := repository.ChangeSemilleroStatus(m.store, semilleroID, nuevoEstado)
	if err != nil || !cambiado {
		fmt.Println("Error al actualizar el estado del semillero")
		return
	}
	fmt.Printf("Estado del semillero actualizado a: %s\n", strings.ToUpper(nuevoEstado))
}

// seleccionarSemillero shows the numbered listing used by the
// entregable flows and returns the chosen semillero.
func (m *Menu) seleccionarSemillero() *models.Semillero {
	semilleros, err := repository.GetAllSemilleros(m.store)
	if err != nil {
		fmt.Printf("Error al consultar los semilleros: %v\n", err)
		return nil
	}
	if len(semilleros) == 0 {
		fmt.Println("\nNo hay semilleros registrados.")
		pausar(m.reader)
		return nil
	}

	fmt.Println("\n--- SEMILLEROS DISPONIBLES ---")
	for i, semillero := range semilleros {
		fmt.Printf("%d. %s\n", i+1, semillero)
	}

	opcion, ok := leerEntero(m.reader, "\nSeleccione un semillero: ")
	if !ok || opcion < 1 || opcion > len(semilleros) {
		fmt.Println("\nOpción inválida.")
		return nil
	}
	return &semilleros[opcion-1]
}

func (m *Menu) asignarEntregable() {
	semillero := m.seleccionarSemillero()
	if semillero == nil {
		return
	}

	existente, err := repository.GetEntregableBySemillero(m.store, semillero.ID)
	if err != nil {
		fmt.Printf("Error al consultar el entregable: %v\n", err)
		return
	}
	if existente != nil {
		fmt.Printf("\nEl semillero ya tiene un entregable asignado: %s\n", existente)
		pausar(m.reader)
		return
	}

	fmt.Printf("\n--- ASIGNAR ENTREGABLE AL SEMILLERO: %s ---\n", semillero.Nombre)
	fmt.Println("\nTIPOS DE ENTREGABLES DISPONIBLES:")
	for i, tipo := range models.TiposEntregable {
		fmt.Printf("%d. %s\n", i+1, tipo)
	}

	tipoOpcion, ok := leerEntero(m.reader, "\nSeleccione el tipo de entregable: ")
	if !ok || tipoOpcion < 1 || tipoOpcion > len(models.TiposEntregable) {
		fmt.Println("\nOpción inválida.")
		return
	}

	entregable := &models.Entregable{
		Titulo:      leerLinea(m.reader, "\nTítulo del entregable: "),
		Descripcion: leerLinea(m.reader, "Descripción: "),
		Tipo:        models.TiposEntregable[tipoOpcion-1],
		SemilleroID: semillero.ID,
	}

	if errores := entregable.Validar(); len(errores) > 0 {
		fmt.Println("\nERRORES EN EL ENTREGABLE:")
		for _, e := range errores {
			fmt.Printf("- %s\n", e)
		}
		pausar(m.reader)
		return
	}

	_, mensaje := repository.CreateEntregable(m.store, entregable)
	fmt.Printf("\n%s\n", mensaje)
	pausar(m.reader)
}

func (m *Menu) verEntregableSemillero() {
	semillero := m.seleccionarSemillero()
	if semillero == nil {
		return
	}

	entregable, err := repository.GetEntregableBySemillero(m.store, semillero.ID)
	if err != nil {
		fmt.Printf("Error al consultar el entregable: %v\n", err)
		return
	}
	if entregable == nil {
		fmt.Printf("\nEl semillero %s no tiene entregables asignados.\n", semillero.Nombre)
		pausar(m.reader)
		return
	}

	fmt.Printf("\n%s\n", entregable.Detalles())

	fmt.Println("\n¿Desea cambiar el estado del entregable?")
	fmt.Println("1. Aprobar")
	fmt.Println("2. Rechazar")
	fmt.Println("3. Volver a pendiente")
	fmt.Println("4. Cancelar")

	opcion, ok := leerEntero(m.reader, "\nSeleccione una opción: ")
	if !ok {
		fmt.Println("\nOpción inválida.")
		pausar(m.reader)
		return
	}

	var nuevoEstado string
	switch opcion {
	case 1:
		nuevoEstado = models.EstadoAprobado
	case 2:
		nuevoEstado = models.EstadoRechazado
	case 3:
		nuevoEstado = models.EstadoPendiente
	default:
		pausar(m.reader)
		return
	}

	_, mensaje := repository.ChangeEntregableStatus(m.store, entregable.ID, nuevoEstado)
	fmt.Printf("\n%s\n", mensaje)
	pausar(m.reader)
}

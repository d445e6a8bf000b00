package role

// Roles del sistema. En la tabla users el rol vive como texto, aquí se maneja
// como enum para el JWT y las tablas de permisos.
type Role int

const (
	Desconocido Role = iota
	Mantenimiento
	Almacen
	Compras
)

func (r Role) String() string {
	switch r {
	case Mantenimiento:
		return "Mantenimiento"
	case Almacen:
		return "Almacén"
	case Compras:
		return "Compras"
	default:
		return "Desconocido"
	}
}

// Parse convierte el rol guardado en la base de datos a enum.
func Parse(s string) Role {
	switch s {
	case "Mantenimiento":
		return Mantenimiento
	case "Almacén", "Almacen":
		return Almacen
	case "Compras":
		return Compras
	default:
		return Desconocido
	}
}

// Actor es la identidad que ejecuta una transición. Siempre viaja explícita
// como parámetro, nunca como estado global.
type Actor struct {
	ID       uint
	Username string
	Role     Role
}

// Transiciones del flujo de requisiciones.
type Transition int

const (
	Crear Transition = iota
	Autorizar
	RegistrarCompra
	RegistrarRecepcion
	RegistrarRetiro
)

// Tabla de permisos: transición -> roles que pueden solicitarla.
// Autorizar no se decide por rol sino por identidad (ver abajo).
var permisos = map[Transition][]Role{
	Crear:              {Mantenimiento},
	Autorizar:          {Mantenimiento},
	RegistrarCompra:    {Compras},
	RegistrarRecepcion: {Almacen},
	RegistrarRetiro:    {Mantenimiento},
}

// Autorizadores: subconjunto de Mantenimiento con permiso de autorizar
// requisiciones de solicitantes restringidos (regla de dos personas).
var autorizadores = map[string]bool{
	"mantenimiento1": true,
	"mantenimiento2": true,
}

// Solicitantes restringidos: sus requisiciones nacen pendientes de autorización.
var solicitantesRestringidos = map[string]bool{
	"mantenimiento3": true,
}

// CanPerform indica si el actor puede solicitar la transición.
func CanPerform(actor Actor, t Transition) bool {
	roles, ok := permisos[t]
	if !ok {
		return false
	}
	for _, r := range roles {
		if actor.Role == r {
			if t == Autorizar {
				return EsAutorizador(actor)
			}
			return true
		}
	}
	return false
}

func EsAutorizador(actor Actor) bool {
	return actor.Role == Mantenimiento && autorizadores[actor.Username]
}

func EsSolicitanteRestringido(actor Actor) bool {
	return solicitantesRestringidos[actor.Username]
}

package workflow

// Estados del flujo de requisiciones. Se persisten tal cual como texto.
//
// "En Stock" y "No Disponible" quedan del flujo anterior de dos etapas:
// siguen siendo valores válidos para filtrar, pero ninguna transición del
// flujo actual los produce.
const (
	EstadoPendienteAutorizacion = "Pendiente Autorización"
	EstadoSolicitado            = "Solicitado"
	EstadoEnStock               = "En Stock"
	EstadoNoDisponible          = "No Disponible"
	EstadoComprado              = "Comprado"
	EstadoCompradoParcial       = "Comprado (Parcial)"
	EstadoNoComprado            = "No Comprado"
	EstadoNoAutorizadoCompras   = "No Autorizado Compras"
	EstadoNoRecibido            = "No Recibido"
	EstadoRecibidoParcial       = "Recibido Parcial"
	EstadoRecibido              = "Recibido"
	EstadoCerrado               = "Cerrado"
)

// EstadosPosibles es el conjunto de estados disponibles para filtros del
// dashboard, en orden de flujo.
var EstadosPosibles = []string{
	EstadoPendienteAutorizacion,
	EstadoSolicitado,
	EstadoEnStock,
	EstadoNoDisponible,
	EstadoComprado,
	EstadoCompradoParcial,
	EstadoNoComprado,
	EstadoNoAutorizadoCompras,
	EstadoNoRecibido,
	EstadoRecibidoParcial,
	EstadoRecibido,
	EstadoCerrado,
}

// Prioridades válidas.
const (
	PrioridadAlta  = "Alta"
	PrioridadMedia = "Media"
	PrioridadBaja  = "Baja"
)

func PrioridadValida(p string) bool {
	return p == PrioridadAlta || p == PrioridadMedia || p == PrioridadBaja
}

package workflow

import "requisiciones/internal/app/ds"

// Reglas de agregación: funciones puras que derivan el estado global de la
// requisición a partir del estado actual de sus materiales. Se recalculan en
// cada transición mutante; repetirlas con los mismos materiales produce
// siempre el mismo estado.

// EstadoCompra deriva el estado después de registrar compras.
func EstadoCompra(mats []ds.Material) string {
	if len(mats) == 0 {
		return EstadoNoComprado
	}

	// 1) Todos quedaron como no autorizados por compras
	todosNoAutorizados := true
	for _, m := range mats {
		if !m.NoAutorizadoCompras {
			todosNoAutorizados = false
			break
		}
	}
	if todosNoAutorizados {
		return EstadoNoAutorizadoCompras
	}

	// 2) Elegibles: sin bandera de no autorizado
	var elegibles []ds.Material
	for _, m := range mats {
		if !m.NoAutorizadoCompras {
			elegibles = append(elegibles, m)
		}
	}
	if len(elegibles) == 0 {
		return EstadoNoComprado
	}

	// 3) Comprables: elegibles sin bandera de no comprado
	var comprables []ds.Material
	for _, m := range elegibles {
		if !m.NoComprado {
			comprables = append(comprables, m)
		}
	}
	if len(comprables) == 0 {
		return EstadoNoComprado
	}

	// 4) Conteo de compras totales y parciales
	fully := 0
	anyPositive := false
	for _, m := range comprables {
		if m.CompradoQty > 0 {
			anyPositive = true
		}
		if m.Cantidad > 0 && m.CompradoQty >= m.Cantidad {
			fully++
		}
	}

	if !anyPositive {
		return EstadoNoComprado
	}
	if fully == len(comprables) {
		return EstadoComprado
	}
	return EstadoCompradoParcial
}

// EstadoRecepcion deriva el estado según lo recibido en almacén. Considera
// solo materiales efectivamente comprados. Si no hay ninguno, el estado no
// cambia y el segundo valor es false.
func EstadoRecepcion(mats []ds.Material) (string, bool) {
	var relevantes []ds.Material
	for _, m := range mats {
		if compradoEfectivo(m) {
			relevantes = append(relevantes, m)
		}
	}
	if len(relevantes) == 0 {
		return "", false
	}

	recibidos := 0
	for _, m := range relevantes {
		if m.RecibidoAlmacen {
			recibidos++
		}
	}

	switch {
	case recibidos == 0:
		return EstadoNoRecibido, true
	case recibidos < len(relevantes):
		return EstadoRecibidoParcial, true
	default:
		return EstadoRecibido, true
	}
}

// DebeCerrarse indica si todos los materiales recibidos ya fueron procesados
// por Mantenimiento (retirados o marcados como no retirados). Sin materiales
// recibidos no hay cierre.
func DebeCerrarse(mats []ds.Material) bool {
	recibidos := 0
	for _, m := range mats {
		if !m.RecibidoAlmacen {
			continue
		}
		recibidos++
		if m.RetiradoQty <= 0 && !m.NoRetirado {
			return false
		}
	}
	return recibidos > 0
}

package workflow

import (
	"sort"
	"strings"
	"time"

	"requisiciones/internal/app/ds"
	"requisiciones/internal/app/role"
)

// Máquina de estados de la requisición. Cada transición valida rol y estado,
// muta la requisición y sus materiales en memoria y recalcula el estado con
// las reglas de agregación. La persistencia (todo o nada) es del repositorio.

// DatosRequisicion son los campos de cabecera capturados al crear.
type DatosRequisicion struct {
	FechaMantenimiento time.Time
	Proyecto           string
	Utilizacion        string
	AreaUso            string
	Prioridad          string
}

// Crear arma una requisición nueva con sus materiales válidos.
// Si el solicitante es restringido la requisición nace pendiente de
// autorización; si no, nace solicitada y autorizada.
func Crear(actor role.Actor, datos DatosRequisicion, drafts []MaterialDraft, now time.Time) (*ds.Requisition, error) {
	if !role.CanPerform(actor, role.Crear) {
		return nil, errAutorizacion("Solo Mantenimiento puede crear requisiciones.")
	}
	if datos.FechaMantenimiento.IsZero() {
		return nil, errValidacion("Fecha de mantenimiento inválida.")
	}
	proyecto := strings.TrimSpace(datos.Proyecto)
	if proyecto == "" {
		return nil, errValidacion("El proyecto es obligatorio.")
	}
	prioridad := datos.Prioridad
	if prioridad == "" {
		prioridad = PrioridadMedia
	}
	if !PrioridadValida(prioridad) {
		return nil, errValidacion("Prioridad inválida.")
	}

	mats := validarMateriales(drafts)
	if len(mats) == 0 {
		return nil, errValidacion("Debes capturar al menos un material válido.")
	}

	estado := EstadoSolicitado
	autorizado := true
	if role.EsSolicitanteRestringido(actor) {
		estado = EstadoPendienteAutorizacion
		autorizado = false
	}

	return &ds.Requisition{
		FechaSolicitud:     now,
		FechaMantenimiento: datos.FechaMantenimiento,
		Proyecto:           proyecto,
		Utilizacion:        strings.TrimSpace(datos.Utilizacion),
		AreaUso:            strings.TrimSpace(datos.AreaUso),
		Prioridad:          prioridad,
		Estado:             estado,
		SolicitanteID:      actor.ID,
		Autorizado:         autorizado,
		Materiales:         mats,
	}, nil
}

// Autorizar aprueba una requisición pendiente. Solo los autorizadores pueden
// hacerlo y repetir la autorización se rechaza sin tocar nada.
func Autorizar(req *ds.Requisition, actor role.Actor, now time.Time) error {
	if !role.CanPerform(actor, role.Autorizar) {
		return errAutorizacion("Solo mantenimiento1 y mantenimiento2 pueden autorizar requisiciones.")
	}
	if req.Autorizado {
		return errEstado("La requisición ya estaba autorizada.")
	}

	req.Autorizado = true
	req.AutorizadoPor = &actor.ID
	req.FechaAutorizacion = &now
	req.Estado = EstadoSolicitado
	return nil
}

// RegistrarCompra aplica los datos de compra por material, recalcula el
// resumen de proveedores y el costo total, y deriva el estado de compra.
// Los materiales sin entrada en inputs se tratan como no capturados (ceros).
func RegistrarCompra(req *ds.Requisition, actor role.Actor, inputs []CompraInput) error {
	if !role.CanPerform(actor, role.RegistrarCompra) {
		return errAutorizacion("Solo Compras puede registrar compras.")
	}

	porMaterial := make(map[uint]CompraInput, len(inputs))
	for _, in := range inputs {
		porMaterial[in.MaterialID] = in
	}

	total := 0.0
	proveedores := make(map[string]bool)

	for i := range req.Materiales {
		m := &req.Materiales[i]
		aplicarCompra(m, porMaterial[m.ID])

		if m.Proveedor != "" {
			proveedores[m.Proveedor] = true
		}
		// Solo suma al total lo efectivamente comprado
		if !m.NoComprado && !m.NoAutorizadoCompras {
			total += m.CostoUnitario * float64(m.CompradoQty)
		}
	}

	req.Proveedor = resumenProveedores(proveedores)
	req.CostoTotal = total
	req.Estado = EstadoCompra(req.Materiales)
	return nil
}

// resumenProveedores arma el resumen ordenado, sin duplicados, separado por comas.
func resumenProveedores(proveedores map[string]bool) string {
	if len(proveedores) == 0 {
		return ""
	}
	nombres := make([]string, 0, len(proveedores))
	for p := range proveedores {
		nombres = append(nombres, p)
	}
	sort.Strings(nombres)
	return strings.Join(nombres, ", ")
}

// RegistrarRecepcion marca qué materiales comprados llegaron a almacén.
// Solo procede sobre requisiciones compradas (total o parcialmente).
func RegistrarRecepcion(req *ds.Requisition, actor role.Actor, inputs []RecepcionInput, now time.Time) error {
	if !role.CanPerform(actor, role.RegistrarRecepcion) {
		return errAutorizacion("Solo Almacén puede procesar la recepción de compras.")
	}
	if req.Estado != EstadoComprado && req.Estado != EstadoCompradoParcial {
		return errEstado("Solo se puede registrar recepción para requisiciones compradas.")
	}

	recibidos := make(map[uint]bool, len(inputs))
	for _, in := range inputs {
		recibidos[in.MaterialID] = in.Recibido
	}

	for i := range req.Materiales {
		m := &req.Materiales[i]
		if compradoEfectivo(*m) {
			m.RecibidoAlmacen = recibidos[m.ID]
		} else {
			// Material no comprado / no autorizado: nunca cuenta como recibido
			m.RecibidoAlmacen = false
		}
	}

	if estado, cambio := EstadoRecepcion(req.Materiales); cambio {
		req.Estado = estado
	}
	req.RevisadoPor = &actor.ID
	req.FechaRevision = &now
	return nil
}

// RegistrarRetiro registra el retiro de materiales recibidos y cierra la
// requisición cuando todo lo recibido quedó procesado.
func RegistrarRetiro(req *ds.Requisition, actor role.Actor, inputs []RetiroInput, now time.Time) error {
	if !role.CanPerform(actor, role.RegistrarRetiro) {
		return errAutorizacion("Solo Mantenimiento puede registrar retiro de material.")
	}
	if req.Estado != EstadoRecibido && req.Estado != EstadoRecibidoParcial {
		return errEstado("Solo se puede registrar retiro cuando la requisición ya fue recibida en almacén.")
	}

	porMaterial := make(map[uint]RetiroInput, len(inputs))
	for _, in := range inputs {
		porMaterial[in.MaterialID] = in
	}

	for i := range req.Materiales {
		m := &req.Materiales[i]
		if !m.RecibidoAlmacen {
			// Solo se procesan materiales que efectivamente llegaron
			continue
		}
		aplicarRetiro(m, porMaterial[m.ID])
	}

	if DebeCerrarse(req.Materiales) {
		req.Estado = EstadoCerrado
		req.FinalizadoPor = &actor.ID
		req.FechaFinalizacion = &now
	}
	return nil
}

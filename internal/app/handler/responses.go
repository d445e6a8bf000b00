package handler

import (
	"requisiciones/internal/app/ds"
	"requisiciones/internal/app/dto"
)

// Conversión de entidades a DTOs de respuesta. Los materiales solo se
// incluyen en el detalle, no en el listado.
func toRequisicionResponse(r ds.Requisition, conMateriales bool) dto.RequisicionResponse {
	resp := dto.RequisicionResponse{
		ID:                 r.ID,
		FechaSolicitud:     r.FechaSolicitud.Format("2006-01-02"),
		FechaMantenimiento: r.FechaMantenimiento.Format("2006-01-02"),
		Proyecto:           r.Proyecto,
		Utilizacion:        r.Utilizacion,
		AreaUso:            r.AreaUso,
		Prioridad:          r.Prioridad,
		Estado:             r.Estado,
		SolicitanteID:      r.SolicitanteID,
		Autorizado:         r.Autorizado,
		AutorizadoPor:      r.AutorizadoPor,
		FechaAutorizacion:  r.FechaAutorizacion,
		Proveedor:          r.Proveedor,
		CostoTotal:         r.CostoTotal,
		RevisadoPor:        r.RevisadoPor,
		FechaRevision:      r.FechaRevision,
		FinalizadoPor:      r.FinalizadoPor,
		FechaFinalizacion:  r.FechaFinalizacion,
		Version:            r.Version,
	}

	if conMateriales {
		resp.Materiales = make([]dto.MaterialResponse, len(r.Materiales))
		for i, m := range r.Materiales {
			resp.Materiales[i] = dto.MaterialResponse{
				ID:                  m.ID,
				Descripcion:         m.Descripcion,
				Unidad:              m.Unidad,
				Cantidad:            m.Cantidad,
				CostoUnitario:       m.CostoUnitario,
				CompradoQty:         m.CompradoQty,
				Proveedor:           m.Proveedor,
				NoComprado:          m.NoComprado,
				NoAutorizadoCompras: m.NoAutorizadoCompras,
				RecibidoAlmacen:     m.RecibidoAlmacen,
				RetiradoQty:         m.RetiradoQty,
				NoRetirado:          m.NoRetirado,
			}
		}
	}

	return resp
}

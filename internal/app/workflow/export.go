package workflow

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"requisiciones/internal/app/ds"
)

// Filas tabulares para el reporte CSV: una fila por requisición con los
// materiales aplanados en una sola columna.

var encabezadosExport = []string{
	"ID", "Fecha_Solicitud", "Fecha_Mantenimiento", "Proyecto",
	"Area_Uso", "Utilizacion", "Prioridad", "Estado", "Solicitante_ID",
	"Autorizado", "Autorizado_Por", "Fecha_Autorizacion",
	"Proveedor_Resumen", "Costo_Total",
	"Revisado_Por", "Fecha_Revision",
	"Finalizado_Por", "Fecha_Finalizacion",
	"Materiales_Detalle",
}

func EncabezadosExport() []string {
	return encabezadosExport
}

// FilaExport aplana una requisición a una fila del reporte.
func FilaExport(r ds.Requisition) []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.FechaSolicitud.Format("2006-01-02"),
		r.FechaMantenimiento.Format("2006-01-02"),
		r.Proyecto,
		r.AreaUso,
		r.Utilizacion,
		r.Prioridad,
		r.Estado,
		strconv.FormatUint(uint64(r.SolicitanteID), 10),
		siNo(r.Autorizado),
		idOpcional(r.AutorizadoPor),
		fechaOpcional(r.FechaAutorizacion),
		r.Proveedor,
		fmt.Sprintf("%.2f", r.CostoTotal),
		idOpcional(r.RevisadoPor),
		fechaOpcional(r.FechaRevision),
		idOpcional(r.FinalizadoPor),
		fechaOpcional(r.FechaFinalizacion),
		DetalleMateriales(r.Materiales),
	}
}

// DetalleMateriales arma la cadena aplanada de renglones, separados por " | ".
func DetalleMateriales(mats []ds.Material) string {
	partes := make([]string, len(mats))
	for i, m := range mats {
		partes[i] = fmt.Sprintf(
			"%d %s %s (CU:%s Comprado:%d Prov:%s NoComprado:%s NoAutCompras:%s Recibido:%s Retirado:%d NoRetirado:%s)",
			m.Cantidad, m.Unidad, m.Descripcion,
			formatoFloat(m.CostoUnitario), m.CompradoQty, m.Proveedor,
			siNo(m.NoComprado), siNo(m.NoAutorizadoCompras),
			siNo(m.RecibidoAlmacen), m.RetiradoQty, siNo(m.NoRetirado),
		)
	}
	return strings.Join(partes, " | ")
}

func siNo(b bool) string {
	if b {
		return "SI"
	}
	return "NO"
}

func formatoFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func idOpcional(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}

func fechaOpcional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02T15:04:05")
}

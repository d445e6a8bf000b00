package workflow

import (
	"testing"
	"time"

	"requisiciones/internal/app/ds"

	"github.com/stretchr/testify/require"
)

func TestDetalleMateriales(t *testing.T) {
	mats := []ds.Material{
		{
			Descripcion:     "Tornillo M8",
			Unidad:          "pza",
			Cantidad:        10,
			CostoUnitario:   2.5,
			CompradoQty:     10,
			Proveedor:       "Ferretería López",
			RecibidoAlmacen: true,
			RetiradoQty:     8,
		},
		{
			Descripcion: "Aceite 15W40",
			Unidad:      "lt",
			Cantidad:    4,
			NoComprado:  true,
		},
	}

	quiero := "10 pza Tornillo M8 (CU:2.5 Comprado:10 Prov:Ferretería López NoComprado:NO NoAutCompras:NO Recibido:SI Retirado:8 NoRetirado:NO)" +
		" | " +
		"4 lt Aceite 15W40 (CU:0 Comprado:0 Prov: NoComprado:SI NoAutCompras:NO Recibido:NO Retirado:0 NoRetirado:NO)"
	require.Equal(t, quiero, DetalleMateriales(mats))
}

func TestFilaExport(t *testing.T) {
	autorizadoPor := uint(2)
	fechaAut := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	r := ds.Requisition{
		FechaSolicitud:     time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		FechaMantenimiento: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Proyecto:           "Planta Norte",
		AreaUso:            "Taller",
		Utilizacion:        "Bomba hidráulica",
		Prioridad:          PrioridadAlta,
		Estado:             EstadoComprado,
		SolicitanteID:      1,
		Autorizado:         true,
		AutorizadoPor:      &autorizadoPor,
		FechaAutorizacion:  &fechaAut,
		Proveedor:          "Ferretería López",
		CostoTotal:         745,
	}
	r.ID = 7

	fila := FilaExport(r)
	require.Len(t, fila, len(EncabezadosExport()))
	require.Equal(t, "7", fila[0])
	require.Equal(t, "2024-03-15", fila[1])
	require.Equal(t, "2024-03-20", fila[2])
	require.Equal(t, "SI", fila[9])
	require.Equal(t, "2", fila[10])
	require.Equal(t, "2024-03-15T10:30:00", fila[11])
	require.Equal(t, "745.00", fila[13])
	// Campos opcionales vacíos mientras no ocurre la etapa
	require.Equal(t, "", fila[14])
	require.Equal(t, "", fila[15])
}

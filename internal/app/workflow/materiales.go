package workflow

import (
	"strings"

	"requisiciones/internal/app/ds"
)

// MaterialDraft es un renglón capturado al crear la requisición.
type MaterialDraft struct {
	Descripcion string
	Unidad      string
	Cantidad    int
}

// CompraInput son los datos de compra capturados por material.
type CompraInput struct {
	MaterialID          uint
	CostoUnitario       float64
	CompradoQty         int
	Proveedor           string
	NoComprado          bool
	NoAutorizadoCompras bool
}

// RecepcionInput marca si un material llegó a almacén.
type RecepcionInput struct {
	MaterialID uint
	Recibido   bool
}

// RetiroInput registra el retiro de un material recibido.
type RetiroInput struct {
	MaterialID  uint
	RetiradoQty int
	NoRetirado  bool
}

// validarMateriales filtra los renglones capturados: descripción y unidad no
// vacías, cantidad entera positiva. Los renglones inválidos se descartan en
// silencio, como las filas vacías del formulario de captura.
func validarMateriales(drafts []MaterialDraft) []ds.Material {
	var mats []ds.Material
	for _, d := range drafts {
		desc := strings.TrimSpace(d.Descripcion)
		unidad := strings.TrimSpace(d.Unidad)
		if desc == "" || unidad == "" || d.Cantidad <= 0 {
			continue
		}
		mats = append(mats, ds.Material{
			Descripcion: desc,
			Unidad:      unidad,
			Cantidad:    d.Cantidad,
		})
	}
	return mats
}

// aplicarCompra escribe los datos de compra en el material con los recortes
// del flujo: costo negativo a 0, comprado dentro de [0, cantidad], y las
// banderas de exclusión fuerzan comprado = 0.
func aplicarCompra(m *ds.Material, in CompraInput) {
	cu := in.CostoUnitario
	if cu < 0 {
		cu = 0
	}
	comp := in.CompradoQty
	if comp < 0 {
		comp = 0
	}
	if comp > m.Cantidad {
		comp = m.Cantidad
	}

	m.CostoUnitario = cu
	if in.NoComprado || in.NoAutorizadoCompras {
		m.CompradoQty = 0
	} else {
		m.CompradoQty = comp
	}
	m.Proveedor = strings.TrimSpace(in.Proveedor)
	m.NoComprado = in.NoComprado
	m.NoAutorizadoCompras = in.NoAutorizadoCompras
}

// compradoEfectivo indica si el material cuenta como comprado de verdad:
// cantidad positiva y sin banderas de exclusión.
func compradoEfectivo(m ds.Material) bool {
	return m.CompradoQty > 0 && !m.NoComprado && !m.NoAutorizadoCompras
}

// aplicarRetiro escribe el retiro en un material recibido. La bandera
// NoRetirado fuerza la cantidad a 0; si no, la cantidad se recorta a
// [0, CompradoQty].
func aplicarRetiro(m *ds.Material, in RetiroInput) {
	m.NoRetirado = in.NoRetirado
	if in.NoRetirado {
		m.RetiradoQty = 0
		return
	}
	qty := in.RetiradoQty
	if qty < 0 {
		qty = 0
	}
	if qty > m.CompradoQty {
		qty = m.CompradoQty
	}
	m.RetiradoQty = qty
}

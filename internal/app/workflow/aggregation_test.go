package workflow

import (
	"testing"

	"requisiciones/internal/app/ds"

	"github.com/stretchr/testify/require"
)

func materialesCompra(cantidades, comprados []int) []ds.Material {
	mats := make([]ds.Material, len(cantidades))
	for i := range cantidades {
		mats[i] = ds.Material{
			ID:          uint(i + 1),
			Descripcion: "material",
			Unidad:      "pza",
			Cantidad:    cantidades[i],
			CompradoQty: comprados[i],
		}
	}
	return mats
}

func TestEstadoCompra(t *testing.T) {
	// Compra parcial: 2 de 3 completos
	mats := materialesCompra([]int{5, 3, 2}, []int{5, 3, 0})
	require.Equal(t, EstadoCompradoParcial, EstadoCompra(mats))

	// Compra completa
	mats = materialesCompra([]int{5, 3, 2}, []int{5, 3, 2})
	require.Equal(t, EstadoComprado, EstadoCompra(mats))

	// Nada comprado
	mats = materialesCompra([]int{5, 3, 2}, []int{0, 0, 0})
	require.Equal(t, EstadoNoComprado, EstadoCompra(mats))
}

func TestEstadoCompraCantidadParcial(t *testing.T) {
	// Un solo material comprado a medias sigue siendo parcial
	mats := materialesCompra([]int{10}, []int{4})
	require.Equal(t, EstadoCompradoParcial, EstadoCompra(mats))
}

func TestEstadoCompraExclusiones(t *testing.T) {
	// Todos no autorizados por compras
	mats := materialesCompra([]int{5, 3}, []int{0, 0})
	mats[0].NoAutorizadoCompras = true
	mats[1].NoAutorizadoCompras = true
	require.Equal(t, EstadoNoAutorizadoCompras, EstadoCompra(mats))

	// Los elegibles restantes quedan todos como no comprados
	mats = materialesCompra([]int{5, 3}, []int{0, 0})
	mats[0].NoAutorizadoCompras = true
	mats[1].NoComprado = true
	require.Equal(t, EstadoNoComprado, EstadoCompra(mats))

	// Un excluido no bloquea la compra completa de los demás
	mats = materialesCompra([]int{5, 3}, []int{5, 0})
	mats[1].NoComprado = true
	require.Equal(t, EstadoComprado, EstadoCompra(mats))
}

func TestEstadoRecepcion(t *testing.T) {
	base := func() []ds.Material {
		return materialesCompra([]int{5, 3}, []int{5, 3})
	}

	// Ninguno recibido
	mats := base()
	estado, cambio := EstadoRecepcion(mats)
	require.True(t, cambio)
	require.Equal(t, EstadoNoRecibido, estado)

	// Uno de dos
	mats = base()
	mats[0].RecibidoAlmacen = true
	estado, cambio = EstadoRecepcion(mats)
	require.True(t, cambio)
	require.Equal(t, EstadoRecibidoParcial, estado)

	// Los dos
	mats = base()
	mats[0].RecibidoAlmacen = true
	mats[1].RecibidoAlmacen = true
	estado, cambio = EstadoRecepcion(mats)
	require.True(t, cambio)
	require.Equal(t, EstadoRecibido, estado)
}

func TestEstadoRecepcionSinComprados(t *testing.T) {
	// Sin materiales efectivamente comprados el estado no cambia
	mats := materialesCompra([]int{5}, []int{0})
	_, cambio := EstadoRecepcion(mats)
	require.False(t, cambio)

	// Comprado pero excluido tampoco cuenta
	mats = materialesCompra([]int{5}, []int{5})
	mats[0].NoComprado = true
	_, cambio = EstadoRecepcion(mats)
	require.False(t, cambio)
}

func TestDebeCerrarse(t *testing.T) {
	mats := materialesCompra([]int{5, 3}, []int{5, 3})
	mats[0].RecibidoAlmacen = true
	mats[1].RecibidoAlmacen = true

	// Nada procesado todavía
	require.False(t, DebeCerrarse(mats))

	// Uno retirado, otro pendiente
	mats[0].RetiradoQty = 3
	require.False(t, DebeCerrarse(mats))

	// El pendiente queda marcado como no retirado
	mats[1].NoRetirado = true
	require.True(t, DebeCerrarse(mats))

	// Sin materiales recibidos no hay cierre
	require.False(t, DebeCerrarse(materialesCompra([]int{5}, []int{5})))
}

func TestAgregacionIdempotente(t *testing.T) {
	mats := materialesCompra([]int{5, 3, 2}, []int{5, 3, 0})
	mats[0].RecibidoAlmacen = true

	require.Equal(t, EstadoCompra(mats), EstadoCompra(mats))

	e1, c1 := EstadoRecepcion(mats)
	e2, c2 := EstadoRecepcion(mats)
	require.Equal(t, e1, e2)
	require.Equal(t, c1, c2)

	require.Equal(t, DebeCerrarse(mats), DebeCerrarse(mats))
}

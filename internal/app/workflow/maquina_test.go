package workflow

import (
	"testing"
	"time"

	"requisiciones/internal/app/ds"
	"requisiciones/internal/app/role"

	"github.com/stretchr/testify/require"
)

var (
	solicitante   = role.Actor{ID: 1, Username: "mantenimiento1", Role: role.Mantenimiento}
	restringido   = role.Actor{ID: 3, Username: "mantenimiento3", Role: role.Mantenimiento}
	autorizador   = role.Actor{ID: 2, Username: "mantenimiento2", Role: role.Mantenimiento}
	comprador     = role.Actor{ID: 5, Username: "compras1", Role: role.Compras}
	almacenista   = role.Actor{ID: 4, Username: "almacen", Role: role.Almacen}
	fechaDePrueba = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
)

func requireKind(t *testing.T, want Kind, err error) {
	t.Helper()
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, want, kind)
}

func datosValidos() DatosRequisicion {
	return DatosRequisicion{
		FechaMantenimiento: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Proyecto:           "Planta Norte",
		Utilizacion:        "Bomba hidráulica",
		AreaUso:            "Taller",
	}
}

func draftsValidos() []MaterialDraft {
	return []MaterialDraft{
		{Descripcion: "Tornillo M8", Unidad: "pza", Cantidad: 10},
		{Descripcion: "Aceite 15W40", Unidad: "lt", Cantidad: 4},
	}
}

func TestCrear(t *testing.T) {
	req, err := Crear(solicitante, datosValidos(), draftsValidos(), fechaDePrueba)
	require.NoError(t, err)
	require.Equal(t, EstadoSolicitado, req.Estado)
	require.True(t, req.Autorizado)
	require.Equal(t, solicitante.ID, req.SolicitanteID)
	require.Equal(t, PrioridadMedia, req.Prioridad)
	require.Equal(t, fechaDePrueba, req.FechaSolicitud)
	require.Len(t, req.Materiales, 2)
}

func TestCrearSolicitanteRestringido(t *testing.T) {
	req, err := Crear(restringido, datosValidos(), draftsValidos(), fechaDePrueba)
	require.NoError(t, err)
	require.Equal(t, EstadoPendienteAutorizacion, req.Estado)
	require.False(t, req.Autorizado)
}

func TestCrearRolIncorrecto(t *testing.T) {
	_, err := Crear(comprador, datosValidos(), draftsValidos(), fechaDePrueba)
	requireKind(t, KindAutorizacion, err)
}

func TestCrearValidaciones(t *testing.T) {
	datos := datosValidos()
	datos.Proyecto = "   "
	_, err := Crear(solicitante, datos, draftsValidos(), fechaDePrueba)
	requireKind(t, KindValidacion, err)

	datos = datosValidos()
	datos.FechaMantenimiento = time.Time{}
	_, err = Crear(solicitante, datos, draftsValidos(), fechaDePrueba)
	requireKind(t, KindValidacion, err)

	datos = datosValidos()
	datos.Prioridad = "Urgentísima"
	_, err = Crear(solicitante, datos, draftsValidos(), fechaDePrueba)
	requireKind(t, KindValidacion, err)
}

func TestCrearFiltraRenglonesInvalidos(t *testing.T) {
	drafts := []MaterialDraft{
		{Descripcion: "  ", Unidad: "pza", Cantidad: 5},
		{Descripcion: "Filtro", Unidad: "", Cantidad: 5},
		{Descripcion: "Filtro", Unidad: "pza", Cantidad: 0},
		{Descripcion: "Filtro de aire", Unidad: "pza", Cantidad: 2},
	}
	req, err := Crear(solicitante, datosValidos(), drafts, fechaDePrueba)
	require.NoError(t, err)
	require.Len(t, req.Materiales, 1)
	require.Equal(t, "Filtro de aire", req.Materiales[0].Descripcion)
}

func TestCrearSinMaterialesValidos(t *testing.T) {
	drafts := []MaterialDraft{{Descripcion: "", Unidad: "", Cantidad: 0}}
	_, err := Crear(solicitante, datosValidos(), drafts, fechaDePrueba)
	requireKind(t, KindValidacion, err)
	require.EqualError(t, err, "Debes capturar al menos un material válido.")
}

func TestAutorizar(t *testing.T) {
	req, err := Crear(restringido, datosValidos(), draftsValidos(), fechaDePrueba)
	require.NoError(t, err)

	require.NoError(t, Autorizar(req, autorizador, fechaDePrueba))
	require.True(t, req.Autorizado)
	require.Equal(t, EstadoSolicitado, req.Estado)
	require.Equal(t, autorizador.ID, *req.AutorizadoPor)
	require.Equal(t, fechaDePrueba, *req.FechaAutorizacion)
}

func TestAutorizarNoAutorizador(t *testing.T) {
	req, err := Crear(restringido, datosValidos(), draftsValidos(), fechaDePrueba)
	require.NoError(t, err)

	otro := role.Actor{ID: 9, Username: "mantenimiento9", Role: role.Mantenimiento}
	err = Autorizar(req, otro, fechaDePrueba)
	requireKind(t, KindAutorizacion, err)
	require.False(t, req.Autorizado)
}

func TestAutorizarYaAutorizada(t *testing.T) {
	req, err := Crear(restringido, datosValidos(), draftsValidos(), fechaDePrueba)
	require.NoError(t, err)
	require.NoError(t, Autorizar(req, autorizador, fechaDePrueba))

	despues := fechaDePrueba.Add(time.Hour)
	err = Autorizar(req, solicitante, despues)
	requireKind(t, KindEstado, err)
	// Los datos de la primera autorización no se tocan
	require.Equal(t, autorizador.ID, *req.AutorizadoPor)
	require.Equal(t, fechaDePrueba, *req.FechaAutorizacion)
}

func reqConMateriales(t *testing.T) *ds.Requisition {
	t.Helper()
	req, err := Crear(solicitante, datosValidos(), draftsValidos(), fechaDePrueba)
	require.NoError(t, err)
	for i := range req.Materiales {
		req.Materiales[i].ID = uint(i + 1)
	}
	return req
}

func TestRegistrarCompra(t *testing.T) {
	req := reqConMateriales(t)

	err := RegistrarCompra(req, comprador, []CompraInput{
		{MaterialID: 1, CostoUnitario: 2.5, CompradoQty: 10, Proveedor: "Ferretería López"},
		{MaterialID: 2, CostoUnitario: 180, CompradoQty: 4, Proveedor: "Aceites MX"},
	})
	require.NoError(t, err)
	require.Equal(t, EstadoComprado, req.Estado)
	require.Equal(t, "Aceites MX, Ferretería López", req.Proveedor)
	require.Equal(t, 2.5*10+180*4, req.CostoTotal)
}

func TestRegistrarCompraRecortes(t *testing.T) {
	req := reqConMateriales(t)

	err := RegistrarCompra(req, comprador, []CompraInput{
		{MaterialID: 1, CostoUnitario: -3, CompradoQty: 999, Proveedor: "X"},
		{MaterialID: 2, CostoUnitario: 180, CompradoQty: -5, Proveedor: "X"},
	})
	require.NoError(t, err)
	// Cantidad solicitada del material 1 es 10: el exceso se recorta
	require.Equal(t, 10, req.Materiales[0].CompradoQty)
	require.Equal(t, 0.0, req.Materiales[0].CostoUnitario)
	// Negativos suben a 0
	require.Equal(t, 0, req.Materiales[1].CompradoQty)
	require.Equal(t, EstadoCompradoParcial, req.Estado)
}

func TestRegistrarCompraExclusiones(t *testing.T) {
	req := reqConMateriales(t)

	err := RegistrarCompra(req, comprador, []CompraInput{
		{MaterialID: 1, CostoUnitario: 2.5, CompradoQty: 10, NoComprado: true},
		{MaterialID: 2, CostoUnitario: 180, CompradoQty: 4, Proveedor: "Aceites MX"},
	})
	require.NoError(t, err)
	// La bandera fuerza comprado = 0 y lo saca del total
	require.Equal(t, 0, req.Materiales[0].CompradoQty)
	require.Equal(t, 180.0*4, req.CostoTotal)
	require.Equal(t, EstadoComprado, req.Estado)
}

func TestRegistrarCompraRolIncorrecto(t *testing.T) {
	req := reqConMateriales(t)
	err := RegistrarCompra(req, almacenista, nil)
	requireKind(t, KindAutorizacion, err)
}

func TestRegistrarRecepcion(t *testing.T) {
	req := reqConMateriales(t)
	require.NoError(t, RegistrarCompra(req, comprador, []CompraInput{
		{MaterialID: 1, CostoUnitario: 2.5, CompradoQty: 10},
		{MaterialID: 2, CostoUnitario: 180, CompradoQty: 4},
	}))

	err := RegistrarRecepcion(req, almacenista, []RecepcionInput{
		{MaterialID: 1, Recibido: true},
	}, fechaDePrueba)
	require.NoError(t, err)
	require.Equal(t, EstadoRecibidoParcial, req.Estado)
	require.True(t, req.Materiales[0].RecibidoAlmacen)
	require.False(t, req.Materiales[1].RecibidoAlmacen)
	require.Equal(t, almacenista.ID, *req.RevisadoPor)
	require.Equal(t, fechaDePrueba, *req.FechaRevision)
}

func TestRegistrarRecepcionEstadoIncorrecto(t *testing.T) {
	req := reqConMateriales(t)
	err := RegistrarRecepcion(req, almacenista, nil, fechaDePrueba)
	requireKind(t, KindEstado, err)
}

func TestRegistrarRecepcionIgnoraNoComprados(t *testing.T) {
	req := reqConMateriales(t)
	require.NoError(t, RegistrarCompra(req, comprador, []CompraInput{
		{MaterialID: 1, CostoUnitario: 2.5, CompradoQty: 10},
		{MaterialID: 2, NoComprado: true},
	}))

	// Marcar como recibido un material no comprado no surte efecto
	err := RegistrarRecepcion(req, almacenista, []RecepcionInput{
		{MaterialID: 1, Recibido: true},
		{MaterialID: 2, Recibido: true},
	}, fechaDePrueba)
	require.NoError(t, err)
	require.False(t, req.Materiales[1].RecibidoAlmacen)
	require.Equal(t, EstadoRecibido, req.Estado)
}

func reqRecibida(t *testing.T) *ds.Requisition {
	t.Helper()
	req := reqConMateriales(t)
	require.NoError(t, RegistrarCompra(req, comprador, []CompraInput{
		{MaterialID: 1, CostoUnitario: 2.5, CompradoQty: 10},
		{MaterialID: 2, CostoUnitario: 180, CompradoQty: 4},
	}))
	require.NoError(t, RegistrarRecepcion(req, almacenista, []RecepcionInput{
		{MaterialID: 1, Recibido: true},
		{MaterialID: 2, Recibido: true},
	}, fechaDePrueba))
	return req
}

func TestRegistrarRetiro(t *testing.T) {
	req := reqRecibida(t)

	err := RegistrarRetiro(req, solicitante, []RetiroInput{
		{MaterialID: 1, RetiradoQty: 999},
		{MaterialID: 2, RetiradoQty: -3},
	}, fechaDePrueba)
	require.NoError(t, err)
	// El retiro se recorta a lo comprado
	require.Equal(t, 10, req.Materiales[0].RetiradoQty)
	require.Equal(t, 0, req.Materiales[1].RetiradoQty)
	// El material 2 sigue pendiente, no hay cierre
	require.Equal(t, EstadoRecibido, req.Estado)
	require.Nil(t, req.FinalizadoPor)
}

func TestRegistrarRetiroCierre(t *testing.T) {
	req := reqRecibida(t)

	err := RegistrarRetiro(req, solicitante, []RetiroInput{
		{MaterialID: 1, RetiradoQty: 10},
		{MaterialID: 2, NoRetirado: true},
	}, fechaDePrueba)
	require.NoError(t, err)
	require.Equal(t, EstadoCerrado, req.Estado)
	require.Equal(t, solicitante.ID, *req.FinalizadoPor)
	require.Equal(t, fechaDePrueba, *req.FechaFinalizacion)
	require.Equal(t, 0, req.Materiales[1].RetiradoQty)
	require.True(t, req.Materiales[1].NoRetirado)
}

func TestRegistrarRetiroEstadoIncorrecto(t *testing.T) {
	req := reqConMateriales(t)
	err := RegistrarRetiro(req, solicitante, nil, fechaDePrueba)
	requireKind(t, KindEstado, err)
}

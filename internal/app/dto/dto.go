package dto

import "time"

// ============ Estructuras comunes ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Requisiciones ============

type MaterialDraftRequest struct {
	Descripcion string `json:"descripcion"`
	Unidad      string `json:"unidad"`
	Cantidad    int    `json:"cantidad"`
}

type CreateRequisicionRequest struct {
	FechaMantenimiento string                 `json:"fecha_mantenimiento" binding:"required"` // 2006-01-02
	Proyecto           string                 `json:"proyecto" binding:"required"`
	Utilizacion        string                 `json:"utilizacion"`
	AreaUso            string                 `json:"area_uso"`
	Prioridad          string                 `json:"prioridad"`
	Materiales         []MaterialDraftRequest `json:"materiales" binding:"required"`
}

type MaterialResponse struct {
	ID                  uint    `json:"id"`
	Descripcion         string  `json:"descripcion"`
	Unidad              string  `json:"unidad"`
	Cantidad            int     `json:"cantidad"`
	CostoUnitario       float64 `json:"costo_unitario"`
	CompradoQty         int     `json:"comprado_qty"`
	Proveedor           string  `json:"proveedor,omitempty"`
	NoComprado          bool    `json:"no_comprado"`
	NoAutorizadoCompras bool    `json:"no_autorizado_compras"`
	RecibidoAlmacen     bool    `json:"recibido_almacen"`
	RetiradoQty         int     `json:"retirado_qty"`
	NoRetirado          bool    `json:"no_retirado"`
}

type RequisicionResponse struct {
	ID                 uint               `json:"id"`
	FechaSolicitud     string             `json:"fecha_solicitud"`
	FechaMantenimiento string             `json:"fecha_mantenimiento"`
	Proyecto           string             `json:"proyecto"`
	Utilizacion        string             `json:"utilizacion,omitempty"`
	AreaUso            string             `json:"area_uso,omitempty"`
	Prioridad          string             `json:"prioridad"`
	Estado             string             `json:"estado"`
	SolicitanteID      uint               `json:"solicitante_id"`
	Autorizado         bool               `json:"autorizado"`
	AutorizadoPor      *uint              `json:"autorizado_por,omitempty"`
	FechaAutorizacion  *time.Time         `json:"fecha_autorizacion,omitempty"`
	Proveedor          string             `json:"proveedor,omitempty"`
	CostoTotal         float64            `json:"costo_total"`
	RevisadoPor        *uint              `json:"revisado_por,omitempty"`
	FechaRevision      *time.Time         `json:"fecha_revision,omitempty"`
	FinalizadoPor      *uint              `json:"finalizado_por,omitempty"`
	FechaFinalizacion  *time.Time         `json:"fecha_finalizacion,omitempty"`
	Version            uint               `json:"version"`
	Materiales         []MaterialResponse `json:"materiales,omitempty"`
}

type RequisicionListResponse struct {
	Requisiciones []RequisicionResponse `json:"requisiciones"`
	Total         int                   `json:"total"`
	Estados       []string              `json:"estados"` // valores disponibles para el filtro
}

// ============ Transiciones ============

type CompraItemRequest struct {
	MaterialID          uint    `json:"material_id" binding:"required"`
	CostoUnitario       float64 `json:"costo_unitario"`
	CompradoQty         int     `json:"comprado_qty"`
	Proveedor           string  `json:"proveedor"`
	NoComprado          bool    `json:"no_comprado"`
	NoAutorizadoCompras bool    `json:"no_autorizado_compras"`
}

type CompraRequest struct {
	Materiales []CompraItemRequest `json:"materiales" binding:"required"`
}

type RecepcionItemRequest struct {
	MaterialID uint `json:"material_id" binding:"required"`
	Recibido   bool `json:"recibido"`
}

type RecepcionRequest struct {
	Materiales []RecepcionItemRequest `json:"materiales" binding:"required"`
}

type RetiroItemRequest struct {
	MaterialID  uint `json:"material_id" binding:"required"`
	RetiradoQty int  `json:"retirado_qty"`
	NoRetirado  bool `json:"no_retirado"`
}

type RetiroRequest struct {
	Materiales []RetiroItemRequest `json:"materiales" binding:"required"`
}

// ============ Usuarios ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=1"`
	Role     string `json:"role" binding:"required,oneof=Mantenimiento Almacén Compras"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

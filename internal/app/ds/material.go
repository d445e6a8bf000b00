package ds

// Tabla de materiales (renglones de una requisición).
// Los renglones se crean una sola vez junto con la requisición y cada etapa
// posterior los muta en sitio; solo se borran en cascada con la requisición.
type Material struct {
	ID            uint `gorm:"primaryKey"`
	RequisitionID uint `gorm:"not null;index"`

	// Datos de la solicitud (inmutables después de crear)
	Descripcion string `gorm:"type:text;not null"`
	Unidad      string `gorm:"type:varchar(20);not null"`
	Cantidad    int    `gorm:"not null"` // cantidad solicitada

	// Compras
	CostoUnitario float64 `gorm:"type:decimal(10,2);default:0"`
	CompradoQty   int     `gorm:"default:0"`
	Proveedor     string  `gorm:"type:varchar(255)"` // proveedor por material

	// Exclusiones de compras: cualquiera de las dos fuerza CompradoQty = 0
	NoComprado          bool `gorm:"default:false"`
	NoAutorizadoCompras bool `gorm:"default:false"`

	// Recepción en almacén (llegó / no llegó)
	RecibidoAlmacen bool `gorm:"default:false"`

	// Retiro por Mantenimiento
	RetiradoQty int  `gorm:"default:0"`
	NoRetirado  bool `gorm:"default:false"`
}

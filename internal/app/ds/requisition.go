package ds

import "time"

// Tabla de requisiciones de mantenimiento.
// El estado se persiste como texto y siempre se recalcula a partir de los
// materiales en cada transición (ver internal/app/workflow).
type Requisition struct {
	ID uint `gorm:"primaryKey"`

	FechaSolicitud     time.Time `gorm:"type:date;not null"`
	FechaMantenimiento time.Time `gorm:"type:date;not null"`

	Proyecto    string `gorm:"type:varchar(255);not null"`
	Utilizacion string `gorm:"type:text"`
	AreaUso     string `gorm:"type:varchar(255)"` // área donde se ocupa el material

	Prioridad string `gorm:"type:varchar(20);not null"` // Alta / Media / Baja
	Estado    string `gorm:"type:varchar(50);not null;default:'Solicitado'"`

	SolicitanteID uint `gorm:"not null"`

	// Autorización (requisiciones de solicitantes restringidos)
	Autorizado        bool       `gorm:"default:true"`
	AutorizadoPor     *uint      `gorm:"default:null"`
	FechaAutorizacion *time.Time `gorm:"default:null"`

	// Resumen de compras (denormalizado, recalculado en cada registro de compra)
	Proveedor  string  `gorm:"type:varchar(255)"`
	CostoTotal float64 `gorm:"type:decimal(12,2);default:0"`

	// Trazabilidad: recepción en almacén y cierre
	RevisadoPor       *uint      `gorm:"default:null"`
	FechaRevision     *time.Time `gorm:"default:null"`
	FinalizadoPor     *uint      `gorm:"default:null"`
	FechaFinalizacion *time.Time `gorm:"default:null"`

	// Token de concurrencia optimista: cada transición lo incrementa y el
	// guardado va condicionado a la versión leída.
	Version uint `gorm:"not null;default:0"`

	Materiales []Material `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`

	Solicitante User `gorm:"foreignKey:SolicitanteID"`
}

package repository

import (
	"time"

	"requisiciones/internal/app/ds"
	"requisiciones/internal/app/workflow"

	"gorm.io/gorm"
)

// Métodos para trabajar con requisiciones

// Filtros del listado (dashboard).
type Filtros struct {
	Proyecto           string
	Prioridad          string
	FechaMantenimiento *time.Time
	Estado             string
}

// CreateRequisition persiste la requisición con sus materiales en una sola
// transacción. La máquina de estados ya garantiza al menos un material válido.
func (r *Repository) CreateRequisition(req *ds.Requisition) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(req).Error
	})
}

// GetRequisitionByID carga la requisición con sus materiales en orden de captura.
func (r *Repository) GetRequisitionByID(id uint) (*ds.Requisition, error) {
	var req ds.Requisition
	err := r.db.
		Preload("Materiales", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRequisitions regresa las requisiciones filtradas, más recientes primero.
func (r *Repository) ListRequisitions(f Filtros) ([]ds.Requisition, error) {
	query := r.db.Model(&ds.Requisition{}).
		Preload("Materiales", func(db *gorm.DB) *gorm.DB { return db.Order("id") })

	if f.Proyecto != "" {
		query = query.Where("proyecto ILIKE ?", "%"+f.Proyecto+"%")
	}
	if f.Prioridad != "" {
		query = query.Where("prioridad = ?", f.Prioridad)
	}
	if f.FechaMantenimiento != nil {
		query = query.Where("fecha_mantenimiento = ?", *f.FechaMantenimiento)
	}
	if f.Estado != "" {
		query = query.Where("estado = ?", f.Estado)
	}

	var reqs []ds.Requisition
	err := query.Order("id DESC").Find(&reqs).Error
	return reqs, err
}

// GetAllForExport regresa todas las requisiciones con materiales para el CSV.
func (r *Repository) GetAllForExport() ([]ds.Requisition, error) {
	var reqs []ds.Requisition
	err := r.db.
		Preload("Materiales", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&reqs).Error
	return reqs, err
}

// SaveTransition guarda el resultado de una transición en una transacción.
// El update de la cabecera va condicionado a la versión leída: si otra
// transición ganó la carrera no se afecta ninguna fila y se reporta conflicto.
func (r *Repository) SaveTransition(req *ds.Requisition) error {
	prev := req.Version
	req.Version = prev + 1

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ds.Requisition{}).
			Where("id = ? AND version = ?", req.ID, prev).
			Updates(map[string]interface{}{
				"estado":             req.Estado,
				"autorizado":         req.Autorizado,
				"autorizado_por":     req.AutorizadoPor,
				"fecha_autorizacion": req.FechaAutorizacion,
				"proveedor":          req.Proveedor,
				"costo_total":        req.CostoTotal,
				"revisado_por":       req.RevisadoPor,
				"fecha_revision":     req.FechaRevision,
				"finalizado_por":     req.FinalizadoPor,
				"fecha_finalizacion": req.FechaFinalizacion,
				"version":            req.Version,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return workflow.ErrConflicto
		}

		for i := range req.Materiales {
			if err := tx.Save(&req.Materiales[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// La transición no se aplicó, regresamos la versión leída
		req.Version = prev
		return err
	}
	return nil
}

// DeleteRequisition borra la requisición; los materiales caen en cascada.
func (r *Repository) DeleteRequisition(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requisition_id = ?", id).Delete(&ds.Material{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Requisition{}, id).Error
	})
}

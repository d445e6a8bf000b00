package ds

// Tabla de usuarios. El rol se guarda como texto tal cual
// ("Mantenimiento", "Almacén", "Compras").
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(100);unique;not null"`
	Password string `gorm:"type:varchar(100);not null"`
	Role     string `gorm:"type:varchar(50);not null"`
}

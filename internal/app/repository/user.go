package repository

import (
	"strings"

	"requisiciones/internal/app/ds"
)

// Métodos para usuarios (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername busca sin distinguir mayúsculas.
func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("LOWER(username) = ?", strings.ToLower(username)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(username, password, roleName string) (*ds.User, error) {
	user := ds.User{
		Username: username,
		Password: password,
		Role:     roleName,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Count(&count).Error
	return count, err
}

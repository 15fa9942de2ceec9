package models

import (
	"gorm.io/gorm"
)

// EnsureAdmin creates the admin console account on first startup. It does
// nothing when the credentials are not configured or an admin already exists.
func EnsureAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := User{
		Email: email,
		Role:  RoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	return db.Create(&admin).Error
}

// Package model 定义数据库模型
package model

import (
	"gorm.io/gorm"
)

// AutoMigrate migrates the table for the named model
// AutoMigrate 迁移指定模型对应的数据表
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "Account":
		return db.AutoMigrate(Account{})

	case "Vault":
		return db.AutoMigrate(Vault{})

	case "Note":
		return db.AutoMigrate(Note{})
	}
	return nil
}

// AutoMigrateAll migrates every table of the service
// AutoMigrateAll 迁移服务的全部数据表
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Account{}, Vault{}, Note{})
}

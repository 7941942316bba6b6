// Package repository implements the tenant-scoped record store over gorm.
// Every list and lookup is anchored on the scope's workspace id; creates
// stamp it, overriding whatever the caller put on the record. No query in
// this package may touch rows of another workspace.
package repository

import "gorm.io/gorm"

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

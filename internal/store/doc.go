// Package store provides the storage abstraction layer for burnr.
//
// The package defines the [Store] interface which abstracts all database
// operations: session history CRUD and configuration management. The default
// backend is SQLite (pure Go driver); an alternate BoltDB backend is
// selected with the "bolt" build tag.
//
// # Singleton Pattern
//
// Use [GetDB] to obtain the singleton database instance:
//
//	storage := store.GetDB()
//	sessions, err := storage.GetAllSessions()
//
// The live meeting state never touches this package; only finished meetings
// and the startup defaults are persisted.
package store

// Package store persists the attendance document. Every backend reads and
// writes the whole document at once and applies Migrate on every read.
package store

import (
	"context"
	"fmt"

	"ukdtimers/internal/db"
	"ukdtimers/internal/model"
)

// Supported backends.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendMySQL  = "mysql"
	BackendMemory = "memory"
)

// Store loads and saves the whole document.
type Store interface {
	// Load returns the persisted document, or an empty one when nothing is
	// stored or the stored data cannot be read. It never fails.
	Load(ctx context.Context) *model.Document
	// Save replaces the persisted document with doc.
	Save(ctx context.Context, doc *model.Document) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend  string
	FilePath string
	BoltPath string
	MySQLDSN string
}

// Open builds the backend named by opts.Backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.FilePath), nil
	case BackendBolt:
		return OpenBolt(opts.BoltPath)
	case BackendMySQL:
		gormDB, err := db.NewMySQL(opts.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return NewGormStore(gormDB)
	case BackendMemory:
		return NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

// Migrate fills fields that older documents lack. It only sets empty fields,
// so applying it again changes nothing.
func Migrate(doc *model.Document) {
	for i := range doc.Users {
		MigrateUser(&doc.Users[i])
	}
}

// MigrateUser fills a missing email, avatar and room.
func MigrateUser(u *model.User) {
	if u.Email == "" {
		u.Email = u.Username + "@" + model.EmailDomain
	}
	if u.Avatar == "" {
		u.Avatar = model.DefaultAvatar
	}
	if u.Room == "" {
		u.Room = model.DefaultRoom
	}
}

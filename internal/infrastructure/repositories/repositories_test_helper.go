package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		username TEXT UNIQUE NOT NULL,
		phone_number TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		user_type_id TEXT NOT NULL,
		role_id TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE user_types (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		description TEXT,
		created_at DATETIME
	);`)
}

func createCreatorTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE creators (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		creator_id TEXT UNIQUE NOT NULL,
		display_name TEXT NOT NULL,
		bio TEXT,
		instagram TEXT,
		facebook TEXT,
		youtube TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE sequence_counters (
		name TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);`)
}

func createBrandTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE brands (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		company_name TEXT NOT NULL,
		website TEXT,
		contact_email TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createRoleTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE roles (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		description TEXT,
		permissions TEXT NOT NULL,
		user_types TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createKYCTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_documents (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		document_type TEXT NOT NULL,
		document_name TEXT NOT NULL,
		document_number_enc TEXT NOT NULL,
		document_number_masked TEXT NOT NULL,
		file_name TEXT NOT NULL,
		original_file_name TEXT NOT NULL,
		content_type TEXT,
		size_bytes INTEGER,
		status TEXT NOT NULL,
		verification_remarks TEXT,
		verified_by TEXT,
		verified_at DATETIME,
		expires_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE document_reviews (
		id TEXT PRIMARY KEY,
		document_id TEXT NOT NULL,
		reviewer_id TEXT NOT NULL,
		comment TEXT NOT NULL,
		created_at DATETIME
	);`)
}

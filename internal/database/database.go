package database

import (
	"database/sql"

	"gymdesk_backend/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var db *sql.DB

// Init resolves the persistence gateway once at startup. The backend
// counts as configured only when both SUPABASE_DB_URL and
// SUPABASE_SERVICE_KEY are present; anything less leaves the service
// in demo mode. A connection failure also degrades to demo mode
// instead of exiting, so the dashboard stays usable without a backend.
func Init() {
	dbURL := utils.Getenv("SUPABASE_DB_URL", "")
	serviceKey := utils.Getenv("SUPABASE_SERVICE_KEY", "")

	if dbURL == "" || serviceKey == "" {
		utils.LogInfo("Backend not configured, running in demo mode", map[string]interface{}{
			"db_url_set":      dbURL != "",
			"service_key_set": serviceKey != "",
		})
		db = nil
		return
	}

	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		utils.LogError(err, "Error opening database, falling back to demo mode")
		db = nil
		return
	}

	if err := conn.Ping(); err != nil {
		utils.LogError(err, "Error connecting to database, falling back to demo mode")
		conn.Close()
		db = nil
		return
	}

	db = conn
	utils.LogInfo("Database connection established", nil)
}

// Configured reports whether a durable backend is available. Handlers
// snapshot this once per request via the tenant middleware.
func Configured() bool {
	return db != nil
}

// Get returns the connection pool, or nil when unconfigured.
func Get() *sql.DB {
	return db
}

// SetForTesting swaps the pool so tests can inject a sqlmock handle.
func SetForTesting(conn *sql.DB) {
	db = conn
}

package database

var schemaMigrationsDDL = map[Dialect]string{
	SQLite: `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	Postgres: `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMPTZ DEFAULT now()
	)`,
}

// migrations is an ordered list of SQL migration groups. Each entry is a slice
// of SQL statements that are executed together in a single transaction. The
// version number is the 1-based index into this slice. Statements must be
// valid for both SQLite and Postgres.
var migrations = [][]string{
	// Migration 1: node storage. Every record lives under (collection, node_key)
	// as its raw JSON text.
	{
		`CREATE TABLE nodes (
			collection TEXT NOT NULL,
			node_key TEXT NOT NULL,
			value TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (collection, node_key)
		)`,
	},
}

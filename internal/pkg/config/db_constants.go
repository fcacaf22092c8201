package config

// PostgresDbType selects the PostgreSQL backend
const PostgresDbType = "postgres"

// SqliteDbType selects the SQLite backend
const SqliteDbType = "sqlite"

package store

const sqliteSchemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    amount     NUMERIC(6,2) NOT NULL CHECK (amount >= 0.01),
    memo       TEXT NOT NULL,
    created_on DATE NOT NULL
);
`

const postgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id         SERIAL PRIMARY KEY,
    amount     NUMERIC(6,2) NOT NULL CHECK (amount >= 0.01),
    memo       TEXT NOT NULL,
    created_on DATE NOT NULL
);
`

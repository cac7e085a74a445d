package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS usage_details (
    id                INTEGER PRIMARY KEY AUTOINCREMENT,
    person_name       TEXT NOT NULL,
    minutes           INTEGER NOT NULL,
    data_gb           REAL NOT NULL,
    roaming_required  INTEGER NOT NULL CHECK(roaming_required IN (0,1)),
    created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_usage_person ON usage_details(person_name, created_at);
`

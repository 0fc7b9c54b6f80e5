package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
    name          TEXT PRIMARY KEY,
    daily_score   INTEGER NOT NULL,
    threshold     INTEGER NOT NULL,
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS day_entries (
    profile       TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
    date          TEXT NOT NULL,
    raw_score     INTEGER,
    claim_count   INTEGER,
    PRIMARY KEY (profile, date)
);

CREATE INDEX IF NOT EXISTS idx_entries_profile ON day_entries(profile);
`

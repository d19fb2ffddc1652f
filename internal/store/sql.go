package store

const (
	initSchemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    start_time TIMESTAMP NOT NULL,
    source     TEXT NOT NULL,
    config     TEXT
);

CREATE TABLE IF NOT EXISTS channels (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id INTEGER NOT NULL REFERENCES sessions (id),
    cycle      INTEGER NOT NULL,
    frequency  REAL NOT NULL,
    bandwidth  REAL NOT NULL,
    snr        REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_channels_session_cycle ON channels (session_id, cycle);`

	insertSessionSQL = `
INSERT INTO sessions (start_time,
                      source,
                      config)
VALUES (CURRENT_TIMESTAMP, ?, ?)`

	selectSessionSQL = `
SELECT
    id,
    start_time,
    source,
    config
FROM sessions
WHERE
    id = ?`

	insertChannelSQL = `
INSERT INTO channels (session_id,
                      cycle,
                      frequency,
                      bandwidth,
                      snr)
VALUES (?, ?, ?, ?, ?)`

	selectChannelsSQL = `
SELECT
    cycle,
    frequency,
    bandwidth,
    snr
FROM channels
WHERE
    session_id = ?
ORDER BY cycle, id`

	countCyclesSQL = `
SELECT COUNT(DISTINCT cycle) FROM channels WHERE session_id = ?`
)

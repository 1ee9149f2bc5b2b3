// Package queue provides the SQLite-backed job store behind report flows.
package queue

// Schema defines the job table. A flow is one parent row plus child rows
// sharing flow_id, inserted in a single transaction.
const Schema = `
CREATE TABLE IF NOT EXISTS jobs (
    id TEXT PRIMARY KEY,
    flow_id TEXT NOT NULL,
    name TEXT NOT NULL,
    is_parent INTEGER NOT NULL DEFAULT 0,
    state TEXT NOT NULL DEFAULT 'queued',
    created_at TIMESTAMP NOT NULL,
    processed_on TIMESTAMP,
    finished_on TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_jobs_flow
    ON jobs(flow_id, is_parent);

CREATE INDEX IF NOT EXISTS idx_jobs_state
    ON jobs(state, created_at);
`

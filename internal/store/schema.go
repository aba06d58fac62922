package store

// schemaSQL creates the three entity tables and their indexes. Every
// statement is IF NOT EXISTS so the schema can be applied on each open
// without touching existing data.
//
// Cascade rules: deleting a project deletes its tasks, deleting a task
// deletes its descendants (self-referential FK), and daily todos pointing
// at a deleted task keep their row with task_id cleared.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	start_date  TEXT,
	end_date    TEXT,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id          TEXT PRIMARY KEY,
	project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	parent_id   TEXT REFERENCES tasks(id) ON DELETE CASCADE,
	title       TEXT NOT NULL,
	description TEXT,
	status      TEXT DEFAULT 'pending',
	priority    INTEGER DEFAULT 0,
	start_date  TEXT,
	end_date    TEXT,
	progress    INTEGER DEFAULT 0,
	order_index INTEGER DEFAULT 0,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_todos (
	id         TEXT PRIMARY KEY,
	task_id    TEXT REFERENCES tasks(id) ON DELETE SET NULL,
	title      TEXT NOT NULL,
	date       TEXT NOT NULL,
	completed  INTEGER DEFAULT 0,
	memo       TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks(project_id);
CREATE INDEX IF NOT EXISTS idx_tasks_parent_id ON tasks(parent_id);
CREATE INDEX IF NOT EXISTS idx_daily_todos_date ON daily_todos(date);
`

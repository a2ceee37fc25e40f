package db

// createTables creates the necessary tables in the database if they don't exist.
func createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS submissions (
			id INTEGER PRIMARY KEY,
			author_id INTEGER NOT NULL,
			author_name TEXT,
			share_type TEXT,
			content TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			channel_message_id INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			submission_id INTEGER NOT NULL,
			parent_id INTEGER NOT NULL DEFAULT 0,
			author_id INTEGER NOT NULL,
			author_name TEXT,
			content TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,

		// The composite primary key is what enforces one vote per
		// (comment, voter); the toggle logic relies on it.
		`CREATE TABLE IF NOT EXISTS votes (
			comment_id INTEGER NOT NULL,
			voter_id INTEGER NOT NULL,
			value INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			PRIMARY KEY (comment_id, voter_id)
		);`,

		`CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			comment_id INTEGER NOT NULL,
			reporter_id INTEGER NOT NULL,
			reason TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at INTEGER NOT NULL,
			UNIQUE (comment_id, reporter_id)
		);`,

		`CREATE TABLE IF NOT EXISTS profiles (
			user_id INTEGER PRIMARY KEY,
			first_name TEXT,
			display_name TEXT NOT NULL DEFAULT '',
			terms_accepted_at INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS banned_users (
			user_id INTEGER PRIMARY KEY,
			reason TEXT,
			timestamp INTEGER NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS follows (
			submission_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			PRIMARY KEY (submission_id, user_id)
		);`,

		`CREATE TABLE IF NOT EXISTS id_counter (
			counter_name TEXT PRIMARY KEY,
			current_value INTEGER NOT NULL DEFAULT 0
		);`,
	}

	for _, stmt := range stmts {
		if _, err := DB.Exec(stmt); err != nil {
			return err
		}
	}

	// Initialize the confession counter if it doesn't exist
	_, err := DB.Exec("INSERT OR IGNORE INTO id_counter(counter_name, current_value) VALUES('confession_id', 0)")
	return err
}

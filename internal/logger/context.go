package logger

// Component-specific logger functions

// Store returns a logger for record store operations
func Store() Logger {
	return WithField("component", "store")
}

// API returns a logger for HTTP handler operations
func API() Logger {
	return WithField("component", "api")
}

// HTTP returns a logger for request/response logging
func HTTP() Logger {
	return WithField("component", "http")
}

// DB returns a logger for database connection operations
func DB() Logger {
	return WithField("component", "db")
}

// CLI returns a logger for CLI operations
func CLI() Logger {
	return WithField("component", "cli")
}

// Client returns a logger for API client operations
func Client() Logger {
	return WithField("component", "client")
}

package vocab

// GeneralBucket is the fallback assigned when a snippet matches no tag or
// use case. It is never combined with a real match.
const GeneralBucket = "general"

// Default returns the built-in vocabulary set.
func Default() Set {
	return Set{
		Tags: []Tag{
			{ID: "auth", Label: "Authentication", Keywords: []string{"auth", "jwt", "token", "login", "session", "oauth"}},
			{ID: "middleware", Label: "Middleware", Keywords: []string{"middleware", "interceptor", "hook"}},
			{ID: "validation", Label: "Validation", Keywords: []string{"validate", "validation", "schema", "sanitize"}},
			{ID: "database", Label: "Database", Keywords: []string{"database", "sql", "postgres", "mysql", "sqlite", "orm", "query"}},
			{ID: "caching", Label: "Caching", Keywords: []string{"cache", "caching", "redis", "memoize"}},
			{ID: "security", Label: "Security", Keywords: []string{"security", "cors", "csrf", "helmet", "rate limit", "sanitize"}},
			{ID: "logging", Label: "Logging", Keywords: []string{"log", "logger", "logging", "trace"}},
			{ID: "testing", Label: "Testing", Keywords: []string{"test", "testing", "mock", "assert"}},
			{ID: "files", Label: "File Handling", Keywords: []string{"upload", "file", "multipart", "stream"}},
			{ID: "realtime", Label: "Real-time", Keywords: []string{"websocket", "sse", "realtime", "socket"}},
			{ID: "errors", Label: "Error Handling", Keywords: []string{"error", "exception", "recover", "retry"}},
		},
		UseCases: []UseCase{
			{ID: "authentication", Title: "Authentication", Description: "Protect routes and identify users.",
				Keywords: []string{"auth", "jwt", "login", "session", "token"}},
			{ID: "api-security", Title: "API Security", Description: "Harden endpoints against abuse.",
				Keywords: []string{"cors", "rate limit", "csrf", "helmet", "security"}},
			{ID: "data-validation", Title: "Data Validation", Description: "Validate and sanitize request payloads.",
				Keywords: []string{"validate", "validation", "schema", "sanitize"}},
			{ID: "database-access", Title: "Database Access", Description: "Query and persist application data.",
				Keywords: []string{"database", "sql", "orm", "query", "migration"}},
			{ID: "performance", Title: "Performance", Description: "Cache and compress for faster responses.",
				Keywords: []string{"cache", "compress", "compression", "etag", "performance"}},
			{ID: "observability", Title: "Observability", Description: "Log, trace, and monitor requests.",
				Keywords: []string{"log", "logging", "metrics", "trace", "health"}},
			{ID: "file-uploads", Title: "File Uploads", Description: "Accept and process uploaded files.",
				Keywords: []string{"upload", "multipart", "file"}},
			{ID: "realtime-apps", Title: "Real-time Apps", Description: "Push live updates to clients.",
				Keywords: []string{"websocket", "sse", "realtime"}},
		},
		Patterns: []Pattern{
			{ID: "middleware", Name: "Middleware", Description: "Composable request/response processing chain.",
				Keywords: []string{"middleware", "next", "chain"}},
			{ID: "factory", Name: "Factory", Description: "Creation function returning configured instances.",
				Keywords: []string{"factory", "create", "builder"}},
			{ID: "singleton", Name: "Singleton", Description: "Single shared instance per process.",
				Keywords: []string{"singleton", "shared instance", "connection pool"}},
			{ID: "decorator", Name: "Decorator", Description: "Wrap behavior around an existing handler.",
				Keywords: []string{"decorator", "wrapper", "wrap"}},
			{ID: "observer", Name: "Observer", Description: "Subscribers notified on events.",
				Keywords: []string{"observer", "event", "emit", "subscribe"}},
			{ID: "strategy", Name: "Strategy", Description: "Interchangeable algorithm implementations.",
				Keywords: []string{"strategy", "pluggable", "provider"}},
		},
		Queries: []string{
			"jwt auth",
			"rate limiter",
			"cors middleware",
			"file upload",
			"input validation",
			"error handler",
			"websocket server",
			"request logging",
			"api caching",
			"session management",
		},
		Topics: []Topic{
			{ID: "getting-started", Title: "Getting Started", Description: "Project setup and first routes.",
				Sections: []string{"Installation", "Project structure", "First route", "Running locally"}},
			{ID: "middleware", Title: "Middleware", Description: "Writing and composing middleware.",
				Sections: []string{"Request lifecycle", "Writing middleware", "Ordering", "Error propagation"}},
			{ID: "authentication", Title: "Authentication", Description: "Sessions, tokens, and protected routes.",
				Sections: []string{"Choosing a strategy", "Issuing tokens", "Protecting routes", "Refreshing sessions"}},
			{ID: "error-handling", Title: "Error Handling", Description: "Centralized error handling and reporting.",
				Sections: []string{"Error boundaries", "Custom error types", "Client responses", "Logging failures"}},
			{ID: "deployment", Title: "Deployment", Description: "Building and shipping to production.",
				Sections: []string{"Production builds", "Environment config", "Process managers", "Health checks"}},
		},
	}
}

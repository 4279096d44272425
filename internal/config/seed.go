package config

import (
	"github.com/mwkelly/triptych/internal/board"
	"github.com/mwkelly/triptych/internal/logfeed"
)

// Default returns the built-in demo seed: 24 items (10 To Do, 3 Up Next,
// 11 In Progress) and 26 feed entries. Used when no seed file is given.
func Default() Config {
	return Config{
		Items: []board.Item{
			{Label: "Write onboarding guide", Weight: 1, Status: board.StatusTodo},
			{Label: "Rotate staging credentials", Weight: 2, Status: board.StatusTodo},
			{Label: "Bump linter version", Weight: 1, Status: board.StatusTodo},
			{Label: "Design billing export", Weight: 3, Status: board.StatusTodo},
			{Label: "Fix flaky checkout test", Weight: 1, Status: board.StatusTodo},
			{Label: "Prototype search reranking", Weight: 4, Status: board.StatusTodo},
			{Label: "Archive stale branches", Weight: 1, Status: board.StatusTodo},
			{Label: "Review retention policy", Weight: 3, Status: board.StatusTodo},
			{Label: "Update oncall runbook", Weight: 1, Status: board.StatusTodo},
			{Label: "Plan Q3 capacity", Weight: 6, Status: board.StatusTodo},
			{Label: "Migrate invoice schema", Weight: 1, Status: board.StatusInProgress},
			{Label: "Instrument cache layer", Weight: 3, Status: board.StatusInProgress},
			{Label: "Patch CVE in base image", Weight: 1, Status: board.StatusInProgress},
			{Label: "Refactor session middleware", Weight: 2, Status: board.StatusInProgress},
			{Label: "Tune autoscaler limits", Weight: 1, Status: board.StatusInProgress},
			{Label: "Deduplicate webhook events", Weight: 1, Status: board.StatusInProgress},
			{Label: "Ship dark mode", Weight: 4, Status: board.StatusInProgress},
			{Label: "Backfill audit log", Weight: 1, Status: board.StatusInProgress},
			{Label: "Split monolith auth", Weight: 5, Status: board.StatusInProgress},
			{Label: "Rewrite import pipeline", Weight: 4, Status: board.StatusInProgress},
			{Label: "Fix timezone drift", Weight: 1, Status: board.StatusInProgress},
			{Label: "Benchmark new storage tier", Weight: 2, Status: board.StatusUpNext},
			{Label: "Document feature flags", Weight: 1, Status: board.StatusUpNext},
			{Label: "Consolidate retry logic", Weight: 3, Status: board.StatusUpNext},
		},
		Events: []logfeed.Entry{
			{Label: "Deploy finished: api v2.41.0", Severity: logfeed.SeverityInfo},
			{Label: "Nightly backup completed", Severity: logfeed.SeverityInfo},
			{Label: "Primary DB failover triggered", Severity: logfeed.SeverityCritical},
			{Label: "Webhook delivery failed (3 retries)", Severity: logfeed.SeverityError},
			{Label: "Cache warmed in 41s", Severity: logfeed.SeverityInfo},
			{Label: "New signup: acme-corp", Severity: logfeed.SeverityInfo},
			{Label: "Queue depth above threshold", Severity: logfeed.SeverityWarning},
			{Label: "Cert renewal scheduled", Severity: logfeed.SeverityInfo},
			{Label: "Index rebuild completed", Severity: logfeed.SeverityInfo},
			{Label: "Deploy finished: worker v1.9.2", Severity: logfeed.SeverityInfo},
			{Label: "Payment processor unreachable", Severity: logfeed.SeverityCritical},
			{Label: "Feature flag dark-mode enabled", Severity: logfeed.SeverityInfo},
			{Label: "Scheduled report delivered", Severity: logfeed.SeverityInfo},
			{Label: "Session store compacted", Severity: logfeed.SeverityInfo},
			{Label: "CDN purge completed", Severity: logfeed.SeverityInfo},
			{Label: "Autoscaler added 2 nodes", Severity: logfeed.SeverityInfo},
			{Label: "Email bounce rate spiking", Severity: logfeed.SeverityError},
			{Label: "Import job aborted: bad encoding", Severity: logfeed.SeverityError},
			{Label: "Healthcheck recovered: search", Severity: logfeed.SeverityInfo},
			{Label: "Rollout paused at 50%", Severity: logfeed.SeverityInfo},
			{Label: "Disk usage at 82% on db-3", Severity: logfeed.SeverityWarning},
			{Label: "Token cleanup removed 1.2k rows", Severity: logfeed.SeverityInfo},
			{Label: "Mirror sync completed", Severity: logfeed.SeverityInfo},
			{Label: "Rate limit hit: partner API", Severity: logfeed.SeverityWarning},
			{Label: "Deploy finished: web v3.0.1", Severity: logfeed.SeverityInfo},
			{Label: "Weekly digest queued", Severity: logfeed.SeverityInfo},
		},
	}
}

package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries the suggested next step for warnings and errors.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldRunID identifies a single generation run.
	FieldRunID = "run_id"
	// FieldPlatform names the content platform a line refers to.
	FieldPlatform = "platform"
	// FieldPath is the filesystem path a line refers to.
	FieldPath = "path"
)

package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ScoredTSVHeader is the canonical header row for the scored text output.
// Keep this as the single source of truth; all writers should use it.
const ScoredTSVHeader = "ID\tLength\tDistance\tType\tArchitecture\tStarts with M\tLength score\tTotal_score"

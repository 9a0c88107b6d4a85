package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
	FormatJSON  = "json"
)

// CountPrefix starts the optional trailing total line in text output.
const CountPrefix = "# hits"

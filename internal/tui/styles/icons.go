package styles

const (
	SetForgeIcon string = "⌬"

	CheckIcon   string = "✓"
	ErrorIcon   string = "✖"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"
	SpinnerIcon string = "..."
)

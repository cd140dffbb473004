package model

// Centralized icons for the report and the picker
// Using simple single-width characters for consistent terminal rendering
const (
	IconAdded     = "+" // Value the profiles introduce
	IconKept      = " " // Value already present (no icon to reduce noise)
	IconRemoved   = "✗" // Value dropped from the system value
	IconSelected  = "◆" // Profile selected in the picker
	IconInherits  = "→" // Profile inherits from others
	IconUnchanged = "≈" // Variable ends up with its current value
)

package components

// Canonical component names used by the default registry.
const (
	NameButton   = "button"
	NameInput    = "input"
	NameSpinner  = "spinner"
	NameLogo     = "logo"
	NameLogoIcon = "logo-icon"
)

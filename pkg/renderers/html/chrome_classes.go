package html

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassPage      ChromeClass = "bs-page"
	ClassHeader    ChromeClass = "bs-header"
	ClassIndicator ChromeClass = "bs-indicator"
	ClassCard      ChromeClass = "bs-card"
	ClassFields    ChromeClass = "bs-fields"
	ClassActions   ChromeClass = "bs-actions"
)

// Status classes applied to indicator bubbles and connectors.
const (
	ClassCompleted ChromeClass = "is-completed"
	ClassCurrent   ChromeClass = "is-current"
	ClassUpcoming  ChromeClass = "is-upcoming"
)

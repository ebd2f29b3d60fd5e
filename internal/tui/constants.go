package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	HeaderHeight = 2 // Name + title
	NavBarHeight = 1 // Section tabs
	FooterHeight = 1 // Key legend
	StatusHeight = 1 // Status / error line

	// Border and padding around the content panel
	PanelBorderWidth       = 2
	PanelPaddingHorizontal = 2

	// PanelOverhead is every line that is not panel content
	PanelOverhead = HeaderHeight + NavBarHeight + FooterHeight + StatusHeight + PanelBorderWidth

	// MaxStatusLength truncates footer messages
	MaxStatusLength = 100

	// StatusTimeout clears status messages
	StatusTimeout = 3 * time.Second

	// SessionEventBuffer is the size of the tracker -> program event channel
	SessionEventBuffer = 16
)

package ui

// Screen rows above the result area: title bar, search box and its border.
const listTop = 3

// Rows below the result area: status line and key hints.
const footerLines = 2

// Name column bounds for the result list.
const (
	minNameWidth = 16
	maxNameWidth = 48
)

// modalWidth is the outer width of the detail and help boxes.
const modalWidth = 64

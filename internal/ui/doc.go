// Package ui is the interactive terminal front end of reposearch, built on
// Bubble Tea.
//
// # Layout
//
// The screen is a title bar, a search box, the result area and a footer
// with key hints. The result area shows one of three things: a spinner
// while a search is in flight, the rendered result list, or a short prompt
// when neither is visible. Selecting a row replaces the screen with a
// centered details box until it is dismissed.
//
// # Controller wiring
//
// The model owns a screen value that implements controller.Surface and
// hands it to a controller.Controller. Key and mouse events become
// controller calls; the controller decides what is visible and the model
// only draws the screen. Network fetches run as tea.Cmds and report back
// through searchDoneMsg and searchFailedMsg, so controller state is only
// ever touched on the event loop.
//
// # Keys
//
//   - enter in the search box submits the query
//   - j/k, arrows, g/G move the cursor; enter or a click opens details
//   - esc, q, enter or any click closes details
//   - / or tab returns to the search box, T cycles themes, ? shows help
//   - ctrl+c quits
//
// Search errors are logged but not shown unless the show_errors option is
// set, in which case the footer shows the last one.
package ui

// Package citation implements the citation tooltip body: the panel listing the
// candidate papers a citation marker resolved to.
//
// The package separates three concerns:
//
//   - Render is a pure function from Props to a Body view description. It
//     never touches reader state.
//   - Actions is the side-effecting command object for the selection click. It
//     drives an injected Mutators implementation.
//   - Tooltip is the Bubble Tea sub-model that lays the Body out with lipgloss
//     and maps key presses and mouse clicks onto Actions.
package citation

// Package game ties spawn planning and the drag session together.
//
// The Controller is the single owner of the square, the gesture state, and
// the score. Hosts translate their pointer events into Grant/Move/Release
// (usually through package gesture) and read Frame for rendering.
package game

// Instructions is the on-screen hint shared by all hosts
const Instructions = "Drag the colored square to the gray target"

// Package viewer models the interaction with an external molecular viewer
// as plain data. The host tool forwards selection and command events to an
// Editor, which updates the design session and hands back rendering hints
// (which residue groups to show in which representation and color). The
// package never talks to a viewer itself and owns no event loop.
package viewer

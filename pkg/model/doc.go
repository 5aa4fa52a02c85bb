// Package model defines the value types shared by the range filter controls:
// field descriptors, optional slider values, selection ranges and field bounds.
// Date-time values are carried as millisecond Unix timestamps so every field
// kind shares the same numeric representation. Unset values are distinct from
// zero and encode as JSON null.
package model

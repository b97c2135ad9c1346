// Package structname provides the structured two-part name that underpins
// task names and code references throughout the framework.
//
// A Name is an ordered pair of segment paths: a head (group or module path)
// and a tail (task or attribute path). The separator between the two halves
// and the sub-separator between segments are configurable, but only affect
// string rendering; equality is defined over the rendered form.
package structname

// Package compose synthesizes composite values from an ordered list of
// mixin implementations and a target.
//
// Go cannot fabricate nominal types at runtime, so composition is rendered
// as a dispatch descriptor: a Composite carries its bases in precedence
// order (mixins first, target last) and delegates member lookup to them in
// that order. Ancestry is derived by reflection over transitively embedded
// fields, which stands in for a method resolution order when reducing a
// mixin list to its minimal form.
package compose

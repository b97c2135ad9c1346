// Package fnutil provides small generic function utilities: memoization,
// write-once values, argument coercion, currying, and reflective signature
// verification for handler registration.
package fnutil

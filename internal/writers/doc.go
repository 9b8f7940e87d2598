// Package writers turns verdicts into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (bare token, JSON).
//   • The cipher and validator stay domain-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers

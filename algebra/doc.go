// Package algebra defines the abstract contract blendspace's engine
// requires of the objects it blends — add, subtract, scale, and
// pair-mask scale — without ever inspecting their structure. blendspace
// is an external collaborator to whatever concrete object type a caller
// brings; this package holds only that contract and two small reference
// implementations (Scalar and Pair) used by this module's own tests and
// examples.
package algebra

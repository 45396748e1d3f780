// Package walk traverses ast trees depth-first.
//
// Recursive dispatches each node to a per-kind Visitor; kinds without a
// visitor fall back to Base, which walks the node's children. A visitor
// decides whether to recurse by calling Base itself or by calling the
// callback on chosen children. RecursiveWithAncestors additionally passes
// the stack of nodes from the root to the current node.
package walk

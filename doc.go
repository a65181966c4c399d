// Package boxtree provides a declarative box layout tree for on-screen UI.
//
// A tree of [Node] values is built once, often by cloning styled template
// nodes, and then laid out with [Node.Layout] whenever content or window size
// may have changed. Layout resolves sizes bottom-up from Fit/Fixed policies
// and then positions top-down from alignment, inner margins and child gaps.
//
// Nodes carry a [Visual] payload that only renderers look at; [Draw] walks a
// laid-out tree and hands each node's rectangle and payload to a [Renderer].
// Text leaves measure their content through a [Measurer] when the text
// changes and report it to the engine as their intrinsic size.
package boxtree

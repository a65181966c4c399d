package boxtree

// NodeAt returns the deepest node under (x, y), or nil if root does not
// contain the point. Later siblings win over earlier ones because they are
// drawn on top. Children are only searched inside their parent's rectangle.
func NodeAt(root *Node, x, y int) *Node {
	if root == nil || !root.Contains(x, y) {
		return nil
	}
	for i := len(root.children) - 1; i >= 0; i-- {
		if hit := NodeAt(root.children[i], x, y); hit != nil {
			return hit
		}
	}
	return root
}

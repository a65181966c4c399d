package boxtree

import "image/color"

// Renderer draws resolved nodes. Implementations must tolerate empty or
// negative rectangles, which a misconfigured layout can produce.
type Renderer interface {
	DrawFill(r Rect, c color.Color)
	DrawNinePatch(r Rect, p NinePatch)
	DrawText(r Rect, t Text)
}

// Draw renders root and its subtree parent-first, depth-first, so children
// are drawn on top of their parents. Call Layout before Draw.
func Draw(root *Node, r Renderer) {
	if root == nil {
		return
	}
	root.Walk(func(n *Node, _ int) bool {
		drawNode(n, r)
		return true
	})
}

func drawNode(n *Node, r Renderer) {
	switch v := n.visual.(type) {
	case Fill:
		if v.Color != nil {
			r.DrawFill(n.rect, v.Color)
		}
	case NinePatch:
		if v.Texture != nil {
			r.DrawNinePatch(n.rect, v)
		}
	case Text:
		if v.Content != "" {
			r.DrawText(n.rect, v)
		}
	}
}

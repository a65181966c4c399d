package boxtree

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hitTree() (root, panel, leaf, overlay *Node) {
	leaf = New(WithFixedSize(10, 10), WithID("leaf"))
	panel = New(WithFixedSize(50, 50), WithInnerMargin(5), WithID("panel")).Add(leaf)
	overlay = New(WithFixedSize(20, 20), WithID("overlay"))
	root = New(WithFixedSize(100, 100), WithMainAxis(Horizontal), WithID("root")).Add(panel, overlay)
	root.Layout()
	return root, panel, leaf, overlay
}

func TestNodeAt(t *testing.T) {
	type tc struct {
		x, y int
		want string
	}

	tests := map[string]tc{
		"deepest leaf":       {x: 7, y: 7, want: "leaf"},
		"panel margin":       {x: 1, y: 1, want: "panel"},
		"second child":       {x: 55, y: 5, want: "overlay"},
		"root background":    {x: 90, y: 90, want: "root"},
		"outside everything": {x: 200, y: 5, want: ""},
	}

	root, _, _, _ := hitTree()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			hit := NodeAt(root, tt.x, tt.y)
			if tt.want == "" {
				assert.Nil(t, hit)
				return
			}
			if assert.NotNil(t, hit) {
				assert.Equal(t, tt.want, hit.ID())
			}
		})
	}

	assert.Nil(t, NodeAt(nil, 0, 0))
}

func TestNodeAt_LaterSiblingWins(t *testing.T) {
	under := New(WithFixedSize(10, 10), WithID("under"))
	over := New(WithFixedSize(10, 10), WithID("over"))
	// Cross axis with no margin: both children start at x=0, and the
	// negative gap pulls the second one back over the first on y.
	root := New(WithFixedSize(10, 10), WithChildGap(-10)).Add(under, over)
	root.Layout()

	assert.Equal(t, "over", NodeAt(root, 5, 5).ID())
}

func TestButtons(t *testing.T) {
	_, panel, leaf, overlay := hitTree()

	var clicked []string
	buttons := Buttons{
		NewButton(leaf, func() { clicked = append(clicked, "leaf") }),
		NewButton(panel, func() { clicked = append(clicked, "panel") }),
		NewButton(overlay, nil),
	}

	assert.True(t, buttons.Dispatch(7, 7))
	assert.True(t, buttons.Dispatch(30, 30))
	assert.True(t, buttons.Dispatch(55, 5), "nil action still counts as a hit")
	assert.False(t, buttons.Dispatch(90, 90))
	assert.Equal(t, []string{"leaf", "panel"}, clicked)

	b, ok := buttons.At(7, 7)
	assert.True(t, ok)
	assert.Same(t, leaf, b.Node)
}

func TestButtons_Highlight(t *testing.T) {
	_, panel, _, overlay := hitTree()
	buttons := Buttons{NewButton(panel, nil), NewButton(overlay, nil), {}}

	buttons.Highlight(30, 30, true, color.White, color.Black)
	assert.Equal(t, Fill{Color: color.Black}, panel.Visual())
	assert.Equal(t, Fill{Color: color.White}, overlay.Visual())

	buttons.Highlight(30, 30, false, color.White, color.Black)
	assert.Equal(t, Fill{Color: color.White}, panel.Visual())
}

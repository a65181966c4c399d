// Package layoutfile loads declarative layout documents and builds them
// into boxtree node trees.
//
// A document has a root node and named templates. A node that names a
// template starts from the template's fields, which it may override.
// Templates may name templates of their own. Documents are written in
// YAML, TOML or HCL:
//
//	templates:
//	  panel: {fit: both, x_align: center, inner_margin: 12, child_gap: 4}
//	root:
//	  width: 800
//	  height: 600
//	  children:
//	    - template: panel
//	      children:
//	        - text: Main menu
//
// The same document in HCL uses labelled template blocks and nested node
// blocks:
//
//	template "panel" {
//	  fit          = "both"
//	  inner_margin = 12
//	}
//	root {
//	  width  = 800
//	  height = 600
//	  node {
//	    template = "panel"
//	    node { text = "Main menu" }
//	  }
//	}
package layoutfile

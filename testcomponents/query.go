package testcomponents

import "github.com/vcrobe/storefront/vdom"

// RoleAttr is the attribute components use to label nodes for tests and
// accessibility tooling.
const RoleAttr = "data-role"

// Matcher selects VNodes.
type Matcher func(n *vdom.VNode) bool

// ByTag matches nodes with the given tag.
func ByTag(tag string) Matcher {
	return func(n *vdom.VNode) bool { return n.Tag == tag }
}

// ByRole matches nodes whose data-role attribute equals role.
func ByRole(role string) Matcher {
	return func(n *vdom.VNode) bool { return n.AttrString(RoleAttr) == role }
}

// ByAttr matches nodes whose attribute key equals value.
func ByAttr(key string, value any) Matcher {
	return func(n *vdom.VNode) bool { return n.Attr(key) == value }
}

// FindAll returns every node under root (root included) that matches, in
// document order.
func FindAll(root *vdom.VNode, match Matcher) []*vdom.VNode {
	var found []*vdom.VNode
	var walk func(n *vdom.VNode)
	walk = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		if match(n) {
			found = append(found, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return found
}

// FindFirst returns the first matching node in document order, or nil.
func FindFirst(root *vdom.VNode, match Matcher) *vdom.VNode {
	if all := FindAll(root, match); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Click invokes the node's click handler the way a user click would.
// It reports false when the node has no handler.
func Click(n *vdom.VNode) bool {
	if n == nil || n.OnClick == nil {
		return false
	}
	n.OnClick()
	return true
}

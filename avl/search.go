// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node with an exactly matching key, nil if absent
func (tree *Tree) Search(key interface{}) *Node {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// LowerBound - find the node with the smallest key that is greater
// than or equal to the query key, nil if every key is smaller
func (tree *Tree) LowerBound(key interface{}) *Node {
	return lowerBound(tree.root, key, tree.compare)
}

// internal: binary search descent for the lower bound
//
// a node smaller than the query pushes the answer entirely into its
// right sub-tree; a larger node is itself the answer unless a closer
// candidate exists on its left
func lowerBound(p *Node, key interface{}, compare CompareFunc) *Node {
	if nil == p {
		return nil
	}
	switch c := compare(p.key, key); {
	case c < 0:
		return lowerBound(p.right, key, compare)
	case c > 0:
		if b := lowerBound(p.left, key, compare); nil != b {
			return b
		}
		return p
	default:
		return p
	}
}

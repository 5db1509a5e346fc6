// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/avlbst/treemap/fault"
)

// Delete - remove the node with a matching key from the tree
//
// returns the removed value so the caller regains ownership; the
// deleter is not involved, it only runs on bulk teardown
func (tree *Tree) Delete(key interface{}) (interface{}, error) {
	node := tree.Search(key)
	if nil == node {
		return nil, fault.KeyNotFound
	}
	value := node.value
	tree.erase(node)
	tree.count -= 1
	return value, nil
}

// internal: unlink one node and repair the tree above it
//
// four structural cases; a node with two children is replaced by its
// in-order successor (the leftmost node of the right sub-tree, which
// never has a left child).  after relinking, heights are recomputed
// and balance restored from the detachment point up to the root
func (tree *Tree) erase(node *Node) {
	var repair *Node

	switch {
	case nil == node.left && nil == node.right:
		repair = node.up
		tree.replaceChild(node, nil)

	case nil == node.right:
		repair = node.left
		tree.replaceChild(node, node.left)

	case nil == node.left:
		repair = node.right
		tree.replaceChild(node, node.right)

	default:
		succ := leftmost(node.right)
		if succ.up == node {
			// successor is the right child itself and keeps
			// its own right sub-tree
			repair = succ
		} else {
			// detach the successor, its right child (possibly
			// absent) takes its place
			repair = succ.up
			succ.up.left = succ.right
			if nil != succ.right {
				succ.right.up = succ.up
			}
			succ.right = node.right
			succ.right.up = succ
		}
		succ.left = node.left
		succ.left.up = succ
		tree.replaceChild(node, succ)
		// succ.height is stale here; updateHeight below passes
		// through succ on its way to the root in both repair cases
	}

	if nil != repair {
		updateHeight(repair)
		rebalance(repair)
		tree.root = trunk(repair)
	}

	freeNode(node) // return deleted node to pool
}

// internal: point the parent of node (or the tree root) at the
// replacement, which may be nil
func (tree *Tree) replaceChild(node *Node, r *Node) {
	if nil != r {
		r.up = node.up
	}
	switch {
	case nil == node.up:
		tree.root = r
	case node.up.left == node:
		node.up.left = r
	default:
		node.up.right = r
	}
}

// internal: lowest node in a sub-tree
func leftmost(p *Node) *Node {
	if nil == p {
		fault.Panic("avl: leftmost of nil sub-tree")
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

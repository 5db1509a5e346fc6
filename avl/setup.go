// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/avlbst/treemap/fault"
)

// CompareFunc - total order over keys
// must return negative, zero or positive like strings.Compare
type CompareFunc func(a interface{}, b interface{}) int

// DeleterFunc - called exactly once for each key/value pair released
// by bulk teardown, taking ownership of both
type DeleterFunc func(key interface{}, value interface{})

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	up     *Node       // points to parent node
	key    interface{} // key part for ordering
	value  interface{} // value part for data storage
	height int         // cached sub-tree height, leaf = 1
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root    *Node
	count   int
	compare CompareFunc
	deleter DeleterFunc
}

// New - create an initially empty tree
//
// the comparator is required; the deleter may be nil if bulk teardown
// does not need to release keys and values
func New(compare CompareFunc, deleter DeleterFunc) *Tree {
	if nil == compare {
		fault.Panicf("avl.New: %s", fault.MissingComparator)
	}
	return &Tree{
		root:    nil,
		count:   0,
		compare: compare,
		deleter: deleter,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() interface{} {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Height - the cached height of the sub-tree rooted at a node
func (p *Node) Height() int {
	return p.height
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

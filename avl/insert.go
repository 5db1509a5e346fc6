// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/avlbst/treemap/fault"
)

// Insert - add a key/value pair to the tree
//
// an equal key already in the tree returns fault.KeyAlreadyExists and
// leaves the tree completely unmodified; ownership of the rejected
// pair stays with the caller
func (tree *Tree) Insert(key interface{}, value interface{}) error {
	if nil == tree.root {
		tree.root = newNode(key, value)
		tree.count += 1
		return nil
	}

	n := newNode(key, value)
	err := attach(tree.root, n, tree.compare)
	if nil != err {
		freeNode(n)
		return err
	}

	updateHeight(n)
	rebalance(n)
	tree.root = trunk(tree.root)
	tree.count += 1
	return nil
}

// internal: descend to the attachment point and link the new leaf
func attach(p *Node, n *Node, compare CompareFunc) error {
	switch c := compare(n.key, p.key); {
	case 0 == c:
		return fault.KeyAlreadyExists
	case c < 0:
		if nil != p.left {
			return attach(p.left, n, compare)
		}
		p.left = n
	default:
		if nil != p.right {
			return attach(p.right, n, compare)
		}
		p.right = n
	}
	n.up = p
	return nil
}

// internal: restore the AVL balance limit from a node upward
//
// heights must already be correct (updateHeight); each step applies
// the classic single or double rotation, then the walk continues from
// the possibly new local root towards the tree root
func rebalance(p *Node) {
	for nil != p {
		bf := balanceFactor(p)
		if bf > 1 {
			if balanceFactor(p.left) < 0 {
				rotateLeft(p.left) // convert LR into LL
			}
			rotateRight(p)
		} else if bf < -1 {
			if balanceFactor(p.right) > 0 {
				rotateRight(p.right) // convert RL into RR
			}
			rotateLeft(p)
		}
		// after a rotation p.up is the newly promoted local root
		p = p.up
	}
}

// internal: follow up pointers to the current overall root
//
// rotations can promote a different node into the root position, so
// every mutating operation re-roots the tree this way
func trunk(p *Node) *Node {
	for nil != p.up {
		p = p.up
	}
	return p
}

// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("up fail at node: %v   actual: %v  expected: %v\n", p.key, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckHeights - verify every cached height against a full recount
// and that no node breaks the AVL balance limit
func (tree *Tree) CheckHeights() bool {
	_, ok := checkheight(tree.root)
	return ok
}

// internal: recount heights bottom-up
func checkheight(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkheight(p.left)
	hr, okr := checkheight(p.right)
	if !okl || !okr {
		return 0, false
	}
	h := hl + 1
	if hr > hl {
		h = hr + 1
	}
	if p.height != h {
		fmt.Printf("height fail at node: %v   cached: %d  actual: %d\n", p.key, p.height, h)
		return 0, false
	}
	if d := hl - hr; d < -1 || d > 1 {
		fmt.Printf("balance fail at node: %v   left: %d  right: %d\n", p.key, hl, hr)
		return 0, false
	}
	return h, true
}

// CheckOrder - verify the BST ordering under the tree's comparator
func (tree *Tree) CheckOrder() bool {
	ok := true
	var previous *Node
	inorder(tree.root, func(p *Node) {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			fmt.Printf("order fail at node: %v   after: %v\n", p.key, previous.key)
			ok = false
		}
		previous = p
	})
	return ok
}

// internal: recursive in-order walk, only for consistency checking
func inorder(p *Node, f func(*Node)) {
	if nil == p {
		return
	}
	inorder(p.left, f)
	f(p)
	inorder(p.right, f)
}

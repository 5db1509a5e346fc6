// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/avlbst/treemap/fault"
)

// internal: single right rotation
//
// promotes the left child into p's structural position and demotes p
// to be its right child; returns the new local root
//
// the in-order key sequence is unchanged, only the links move
func rotateRight(p *Node) *Node {
	if nil == p || nil == p.left {
		fault.Panicf("avl: rotateRight: missing left child at: %v", p)
	}

	l := p.left

	if nil != l.right {
		l.right.up = p
	}
	p.left = l.right
	l.right = p

	if nil != p.up {
		if p.up.left == p {
			p.up.left = l
		} else {
			p.up.right = l
		}
	}
	l.up = p.up
	p.up = l

	// p was demoted so its height may have dropped; the loop in
	// updateHeight carries the correction through l and beyond
	updateHeight(p)

	return l
}

// internal: single left rotation, mirror of rotateRight
func rotateLeft(p *Node) *Node {
	if nil == p || nil == p.right {
		fault.Panicf("avl: rotateLeft: missing right child at: %v", p)
	}

	r := p.right

	if nil != r.left {
		r.left.up = p
	}
	p.right = r.left
	r.left = p

	if nil != p.up {
		if p.up.left == p {
			p.up.left = r
		} else {
			p.up.right = r
		}
	}
	r.up = p.up
	p.up = r

	updateHeight(p)

	return r
}

// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: height of a possibly absent sub-tree
//
// only ever the cached value, never recomputed by walking children
func heightOf(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: recompute a node's cached height from its children and
// propagate through every ancestor up to the root
func updateHeight(p *Node) {
	for ; nil != p; p = p.up {
		h := heightOf(p.left)
		if hr := heightOf(p.right); hr > h {
			h = hr
		}
		p.height = h + 1
	}
}

// internal: left height minus right height
func balanceFactor(p *Node) int {
	return heightOf(p.left) - heightOf(p.right)
}

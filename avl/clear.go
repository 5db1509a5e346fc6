// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clear - remove every node, invoking the deleter exactly once per
// key/value pair
//
// consumes the tree top-down: a node with a left child is first
// rotated below that child, so by the time a node is released
// nothing in the remaining tree links to it.  releasing earlier
// would hand the allocator a node an ancestor still points at, and
// reclaimed nodes are scrubbed.  runs in O(1) auxiliary space and
// linear time, no recursion that could exhaust the stack on a deep
// tree
func (tree *Tree) Clear() {
	current := tree.root
	for nil != current {
		if nil == current.left {
			next := current.right
			tree.release(current)
			current = next
		} else {
			// rotate the left child above current; heights and
			// up pointers are not maintained, the whole tree is
			// being discarded
			l := current.left
			current.left = l.right
			l.right = current
			current = l
		}
	}

	tree.root = nil
	tree.count = 0
}

// Destroy - remove every node
//
// equivalent to Clear
func (tree *Tree) Destroy() {
	tree.Clear()
}

// internal: hand one pair to the deleter and reclaim the node
func (tree *Tree) release(node *Node) {
	if nil != tree.deleter {
		tree.deleter(node.key, node.value)
	}
	freeNode(node)
}

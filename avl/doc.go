// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height-balanced binary search tree with the
// addition of parent pointers, used as the backing structure for an
// ordered key/value map
//
// Note: an individual tree is not thread safe, so either access
// only in a single go routine or use mutex/rwmutex to restrict
// access.
//
// Keys are opaque; their ordering comes from a comparator supplied
// once when the tree is created, which must form a strict total
// order.  Duplicate keys are rejected and the tree left untouched, so
// the caller keeps ownership of the rejected pair and decides its
// disposition.
//
// Each node caches the height of its sub-tree (a leaf has height 1)
// and the tree keeps |height(left) - height(right)| <= 1 at every
// node across insert and delete by the classic single/double
// rotations.
package avl

// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// build a node with ready linked children for rotation tests
func testNode(key string, left *Node, right *Node) *Node {
	p := newNode(key, "data:"+key)
	p.left = left
	p.right = right
	h := heightOf(left)
	if hr := heightOf(right); hr > h {
		h = hr
	}
	p.height = h + 1
	if nil != left {
		left.up = p
	}
	if nil != right {
		right.up = p
	}
	return p
}

// left-left chain: c(b(a)) must become b(a, c) after one right
// rotation with the middle key as the new local root
func TestRotateRightChain(t *testing.T) {
	a := testNode("a", nil, nil)
	b := testNode("b", a, nil)
	c := testNode("c", b, nil)

	p := rotateRight(c)

	assert.Same(t, b, p, "new local root")
	assert.Nil(t, b.up)
	assert.Same(t, a, b.left)
	assert.Same(t, c, b.right)
	assert.Same(t, b, a.up)
	assert.Same(t, b, c.up)
	assert.Nil(t, c.left)
	assert.Nil(t, c.right)

	assert.Equal(t, 1, a.height)
	assert.Equal(t, 1, c.height)
	assert.Equal(t, 2, b.height)
}

func TestRotateLeftChain(t *testing.T) {
	c := testNode("c", nil, nil)
	b := testNode("b", nil, c)
	a := testNode("a", nil, b)

	p := rotateLeft(a)

	assert.Same(t, b, p, "new local root")
	assert.Nil(t, b.up)
	assert.Same(t, a, b.left)
	assert.Same(t, c, b.right)
	assert.Same(t, b, a.up)
	assert.Same(t, b, c.up)

	assert.Equal(t, 1, a.height)
	assert.Equal(t, 1, c.height)
	assert.Equal(t, 2, b.height)
}

// the opposite-side grandchild must cross over to the demoted node
// and the original parent must adopt the promoted node
func TestRotateRelink(t *testing.T) {
	k := testNode("k", nil, nil)
	m := testNode("m", nil, nil)
	l := testNode("l", k, m)
	o := testNode("o", nil, nil)
	n := testNode("n", l, o)
	g := testNode("g", nil, n)

	p := rotateRight(n)

	assert.Same(t, l, p)
	assert.Same(t, g, l.up, "promoted node keeps the original parent")
	assert.Same(t, l, g.right, "original parent adopts the promoted node")
	assert.Same(t, m, n.left, "opposite-side grandchild crosses over")
	assert.Same(t, n, m.up)
	assert.Same(t, n, l.right)
	assert.Same(t, l, n.up)

	assert.Equal(t, 2, n.height)
	assert.Equal(t, 3, l.height)
	assert.Equal(t, 4, g.height, "height change propagates to the parent")
}

// rotating without the required child is a caller bug
func TestRotatePrecondition(t *testing.T) {
	assert.Panics(t, func() {
		p := testNode("p", nil, nil)
		rotateRight(p)
	})
	assert.Panics(t, func() {
		p := testNode("p", nil, nil)
		rotateLeft(p)
	})
}

// erase of a node with two children where the successor is deeper
// than the immediate right child
func TestEraseDeepSuccessor(t *testing.T) {
	tree := New(func(a interface{}, b interface{}) int {
		return a.(int) - b.(int)
	}, nil)

	for _, key := range []int{50, 30, 70, 20, 40, 60, 80, 55, 65} {
		assert.NoError(t, tree.Insert(key, key*10))
	}

	// 50 has both children; its successor 55 sits below 60
	value, err := tree.Delete(50)
	assert.NoError(t, err)
	assert.Equal(t, 500, value)

	assert.True(t, tree.CheckUp())
	assert.True(t, tree.CheckHeights())
	assert.True(t, tree.CheckOrder())
	assert.Equal(t, 8, tree.Count())
	assert.Nil(t, tree.Search(50))
	assert.Equal(t, 55, tree.LowerBound(50).Key())

	for _, key := range []int{20, 30, 40, 55, 60, 65, 70, 80} {
		assert.NotNil(t, tree.Search(key), "key %d lost by erase", key)
	}
}

// erase must repair balance above the detachment point: removing from
// the shallow side of a lopsided tree forces a rebalancing rotation
func TestEraseRebalances(t *testing.T) {
	tree := New(func(a interface{}, b interface{}) int {
		return a.(int) - b.(int)
	}, nil)

	for _, key := range []int{20, 10, 30, 5, 25, 40, 35} {
		assert.NoError(t, tree.Insert(key, key))
	}

	// removing 5 unbalances the root towards the right side
	_, err := tree.Delete(5)
	assert.NoError(t, err)

	assert.True(t, tree.CheckUp())
	assert.True(t, tree.CheckHeights())
	assert.True(t, tree.CheckOrder())
	assert.Equal(t, 30, tree.root.key, "rotation must promote a new root")
}

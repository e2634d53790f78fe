package pullrefresh

// defaultIdleFrames is how many frames without a delta end a nested scroll.
const defaultIdleFrames = 6

// ScrollChild is the descendant side of nested scrolling. It splits each
// scroll delta between a NestedScrollParent and the content's own scroll
// position. Wheels have no lift event, so a scroll ends after IdleFrames
// frames without input.
type ScrollChild struct {
	// IdleFrames is how many quiet frames end a nested scroll.
	IdleFrames int

	parent  NestedScrollParent
	consume func(dy int) int
	active  bool
	idle    int
}

// NewScrollChild creates a ScrollChild for parent. consume scrolls the
// content by dy and returns how much it actually moved.
func NewScrollChild(parent NestedScrollParent, consume func(dy int) int) *ScrollChild {
	return &ScrollChild{
		IdleFrames: defaultIdleFrames,
		parent:     parent,
		consume:    consume,
	}
}

// Scroll dispatches dy: the parent pre-consumes, the content scrolls, and the
// leftover goes back to the parent. It returns the on-screen displacement the
// parent reported for the content.
func (c *ScrollChild) Scroll(dy int) int {
	if !c.active {
		c.active = c.parent.StartNestedScroll()
	}
	c.idle = 0
	if dy == 0 {
		return 0
	}
	if !c.active {
		c.consume(dy)
		return 0
	}
	pre := c.parent.NestedPreScroll(dy)
	rest := dy - pre
	used := 0
	if rest != 0 {
		used = c.consume(rest)
	}
	return c.parent.NestedScroll(used, rest-used)
}

// Update counts a frame and stops the nested scroll once it has been idle
// long enough.
func (c *ScrollChild) Update() {
	if !c.active {
		return
	}
	c.idle++
	if c.idle >= c.IdleFrames {
		c.Stop()
	}
}

// Stop ends the nested scroll immediately.
func (c *ScrollChild) Stop() {
	if !c.active {
		return
	}
	c.active = false
	c.idle = 0
	c.parent.StopNestedScroll()
}

// Active reports whether a nested scroll is in progress.
func (c *ScrollChild) Active() bool { return c.active }

package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc(vh int) *Document {
	return NewDocument(vh,
		Section{ID: "hero", Height: vh},
		Section{ID: "showcase", Height: 5 * vh},
		Section{ID: "closing", Height: vh},
	)
}

func TestDocumentLayout(t *testing.T) {
	d := testDoc(40)
	assert.Equal(t, 7*40, d.Height())
	assert.Equal(t, 6*40, d.MaxOffset())

	hero, ok := d.Rect("hero")
	require.True(t, ok)
	assert.Equal(t, Rect{Top: 0, Height: 40}, hero)

	showcase, ok := d.Rect("showcase")
	require.True(t, ok)
	assert.Equal(t, Rect{Top: 40, Height: 200}, showcase)

	_, ok = d.Rect("missing")
	assert.False(t, ok)
}

func TestRectTracksOffset(t *testing.T) {
	d := testDoc(40)
	d.ScrollTo(120)

	showcase, ok := d.Rect("showcase")
	require.True(t, ok)
	assert.Equal(t, -80, showcase.Top)
	assert.Equal(t, 120, showcase.Bottom())
}

func TestScrollClampsAtBothEnds(t *testing.T) {
	d := testDoc(40)

	d.ScrollTo(-50)
	assert.Equal(t, 0, d.Offset())

	d.ScrollTo(99999)
	assert.Equal(t, d.MaxOffset(), d.Offset())

	d.ScrollBy(-99999)
	assert.Equal(t, 0, d.Offset())
}

func TestScrollNotifiesOnlyOnChange(t *testing.T) {
	d := testDoc(40)

	var got []int
	cancel := d.OnScroll(func(off int) { got = append(got, off) })
	defer cancel()

	d.ScrollTo(10)
	d.ScrollTo(10) // same offset, no sample
	d.ScrollTo(-5) // clamps to 0
	assert.Equal(t, []int{10, 0}, got)

	cancel()
	d.ScrollTo(25)
	assert.Equal(t, []int{10, 0}, got, "removed listener must not fire")
}

func TestResizeReclampsOffset(t *testing.T) {
	d := testDoc(40)
	d.ScrollTo(d.MaxOffset())

	// A taller viewport shrinks the scrollable range.
	d.SetViewportHeight(100)
	assert.LessOrEqual(t, d.Offset(), d.MaxOffset())

	// Shrinking the page below one viewport pins the offset at zero.
	d.SetSections(Section{ID: "hero", Height: 10})
	assert.Equal(t, 0, d.Offset())
	assert.Equal(t, 0, d.MaxOffset())
}

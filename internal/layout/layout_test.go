package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 104 columns leave 100 for the panes, so one column is one unit.
const unitWidth = 100 + 2*ResizerWidth

func TestDragMovesAdjacentPanes(t *testing.T) {
	l := Default()
	require.NoError(t, l.StartDrag(0, 20))
	assert.True(t, l.DragTo(30, unitWidth))
	assert.Equal(t, [Panes]float64{30, 30, 40}, l.Widths())
}

func TestDragBelowMinimumIsRejectedWholesale(t *testing.T) {
	l := Default()
	require.NoError(t, l.StartDrag(0, 20))
	// would leave pane 1 at 4
	assert.False(t, l.DragTo(56, unitWidth))
	assert.Equal(t, [Panes]float64{20, 40, 40}, l.Widths())

	// would leave pane 0 at 4
	assert.False(t, l.DragTo(4, unitWidth))
	assert.Equal(t, [Panes]float64{20, 40, 40}, l.Widths())

	// exactly the floor is allowed
	assert.True(t, l.DragTo(5, unitWidth))
	assert.Equal(t, [Panes]float64{5, 55, 40}, l.Widths())
}

func TestDragUsesStartSnapshot(t *testing.T) {
	l := Default()
	require.NoError(t, l.StartDrag(1, 60))
	for x := 61.0; x <= 70; x++ {
		require.True(t, l.DragTo(x, unitWidth))
	}
	assert.Equal(t, [Panes]float64{20, 50, 30}, l.Widths())

	// moving back to the start restores the start widths exactly
	require.True(t, l.DragTo(60, unitWidth))
	assert.Equal(t, [Panes]float64{20, 40, 40}, l.Widths())

	l.EndDrag()
	_, dragging := l.Dragging()
	assert.False(t, dragging)
	assert.False(t, l.DragTo(80, unitWidth))
}

func TestDragScalesWithContainer(t *testing.T) {
	l := Default()
	require.NoError(t, l.StartDrag(0, 0))
	// 54 columns -> 50 available, so 5 columns are 10 units
	require.True(t, l.DragTo(5, 54))
	assert.Equal(t, [Panes]float64{30, 30, 40}, l.Widths())

	assert.False(t, l.DragTo(10, 4), "no room for panes")
}

func TestStartDragValidatesResizer(t *testing.T) {
	l := Default()
	assert.Error(t, l.StartDrag(2, 0))
	assert.Error(t, l.StartDrag(-1, 0))
}

func TestAdjust(t *testing.T) {
	l := Default()
	assert.True(t, l.Adjust(1, -5))
	assert.Equal(t, [Panes]float64{20, 35, 45}, l.Widths())
	assert.False(t, l.Adjust(0, 31), "middle pane would drop to 4")
	assert.Equal(t, [Panes]float64{20, 35, 45}, l.Widths())
	assert.True(t, l.Adjust(0, 20))
	assert.Equal(t, [Panes]float64{40, 15, 45}, l.Widths())
	assert.False(t, l.Adjust(3, 1))
	assert.Equal(t, [Panes]float64{40, 15, 45}, l.Widths())
}

func TestNewValidates(t *testing.T) {
	_, err := New([]float64{50, 50}, 5)
	assert.Error(t, err)
	_, err = New([]float64{2, 49, 49}, 5)
	assert.Error(t, err)
	_, err = New([]float64{30, 30, 30}, 5)
	assert.Error(t, err)
	l, err := New([]float64{25, 50, 25}, 5)
	require.NoError(t, err)
	assert.Equal(t, [Panes]float64{25, 50, 25}, l.Widths())
}

func TestColumnsSumToWidth(t *testing.T) {
	l := Default()
	for total := 5; total < 300; total++ {
		cols := l.Columns(total)
		sum := cols[0] + cols[1] + cols[2]
		assert.Equal(t, total-2*ResizerWidth, sum, "total=%d", total)
	}
	assert.Equal(t, [Panes]int{20, 40, 40}, l.Columns(unitWidth))
	assert.Equal(t, [Panes]int{}, l.Columns(3))
}

func TestHitTesting(t *testing.T) {
	l := Default()
	// panes: [0,20) resizer [20,22) [22,62) resizer [62,64) [64,104)
	r, ok := l.ResizerAt(21, unitWidth)
	require.True(t, ok)
	assert.Equal(t, 0, r)
	r, ok = l.ResizerAt(62, unitWidth)
	require.True(t, ok)
	assert.Equal(t, 1, r)
	_, ok = l.ResizerAt(30, unitWidth)
	assert.False(t, ok)

	p, ok := l.PaneAt(63, unitWidth)
	assert.False(t, ok)
	p, ok = l.PaneAt(64, unitWidth)
	require.True(t, ok)
	assert.Equal(t, 2, p)
	assert.Equal(t, 22, l.PaneStart(1, unitWidth))
}

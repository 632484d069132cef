package display

import (
	"testing"

	"github.com/accessfs/gsxa/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLinesAndClear(t *testing.T) {
	t.Parallel()

	d := New(log2.NewTest(t, log2.LAll))
	assert.Empty(t, d.State(ViewMenu).Lines)

	d.SetLines(ViewMenu, "Main", "1 - Request pushback")
	st := d.State(ViewMenu)
	assert.Equal(t, ViewMenu, st.View)
	assert.Equal(t, "Main\n1 - Request pushback", st.Text())

	d.Clear(ViewMenu)
	assert.Empty(t, d.State(ViewMenu).Lines)
}

func TestViewsAreIndependent(t *testing.T) {
	t.Parallel()

	d := New(log2.NewTest(t, log2.LAll))
	d.SetLines(ViewMenu, "Main")
	d.SetText(ViewTooltip, "Follow the marshaller")
	d.SetLines(ViewStatus, "GSX bus connected")

	d.Clear(ViewMenu)
	assert.Equal(t, "Follow the marshaller", d.State(ViewTooltip).Text())
	assert.Equal(t, "GSX bus connected", d.State(ViewStatus).Text())
}

func TestStateIsACopy(t *testing.T) {
	t.Parallel()

	d := New(log2.NewTest(t, log2.LAll))
	d.SetLines(ViewMenu, "Main")
	st := d.State(ViewMenu)
	st.Lines[0] = "mutated"
	assert.Equal(t, "Main", d.State(ViewMenu).Text())
}

func TestUpdateChan(t *testing.T) {
	t.Parallel()

	d := New(log2.NewTest(t, log2.LAll))
	upd := make(chan State, 4)
	d.SetUpdateChan(upd)

	d.SetLines(ViewStatus, "GSX bus connected")
	select {
	case st := <-upd:
		require.Equal(t, ViewStatus, st.View)
		assert.Equal(t, "GSX bus connected", st.Text())
	default:
		t.Fatal("no update delivered")
	}
}

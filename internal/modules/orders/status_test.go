package orders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from    orders.Status
		allowed []orders.Status
	}{
		{orders.StatusDraft, []orders.Status{orders.StatusSubmitted, orders.StatusCancelled}},
		{orders.StatusSubmitted, []orders.Status{orders.StatusReceived, orders.StatusCancelled, orders.StatusOnHold}},
		{orders.StatusReceived, []orders.Status{orders.StatusInspected, orders.StatusCancelled, orders.StatusOnHold}},
		{orders.StatusInspected, []orders.Status{orders.StatusRepairing, orders.StatusCancelled, orders.StatusOnHold}},
		{orders.StatusRepairing, []orders.Status{orders.StatusReady, orders.StatusCancelled, orders.StatusOnHold}},
		{orders.StatusReady, []orders.Status{orders.StatusShipped, orders.StatusOnHold}},
		{orders.StatusShipped, []orders.Status{orders.StatusCompleted}},
		{orders.StatusOnHold, []orders.Status{orders.StatusReceived, orders.StatusInspected, orders.StatusRepairing, orders.StatusCancelled}},
		{orders.StatusCompleted, nil},
		{orders.StatusCancelled, nil},
	}

	all := []orders.Status{
		orders.StatusDraft, orders.StatusSubmitted, orders.StatusReceived,
		orders.StatusInspected, orders.StatusRepairing, orders.StatusReady,
		orders.StatusShipped, orders.StatusCompleted, orders.StatusCancelled,
		orders.StatusOnHold,
	}

	for _, tc := range cases {
		allowed := map[orders.Status]bool{}
		for _, s := range tc.allowed {
			allowed[s] = true
		}
		// a transition succeeds iff the target is in the allowed-next set
		for _, to := range all {
			assert.Equal(t, allowed[to], tc.from.CanTransition(to),
				"%s -> %s", tc.from, to)
		}
		assert.ElementsMatch(t, tc.allowed, tc.from.NextStatuses(), "from %s", tc.from)
	}
}

func TestDraftCannotSkipToReceived(t *testing.T) {
	assert.False(t, orders.StatusDraft.CanTransition(orders.StatusReceived))
}

func TestReceivedCannotShipDirectly(t *testing.T) {
	assert.False(t, orders.StatusReceived.CanTransition(orders.StatusShipped))
	assert.True(t, orders.StatusReceived.CanTransition(orders.StatusOnHold))
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, orders.StatusCompleted.Terminal())
	assert.True(t, orders.StatusCancelled.Terminal())
	assert.Nil(t, orders.StatusCompleted.NextStatuses())
	assert.Nil(t, orders.StatusCancelled.NextStatuses())

	assert.False(t, orders.StatusCompleted.Editable())
	assert.False(t, orders.StatusCancelled.Editable())
	assert.True(t, orders.StatusOnHold.Editable())
}

func TestSelfTransitionNeverAllowed(t *testing.T) {
	for s := range map[orders.Status]bool{
		orders.StatusDraft: true, orders.StatusSubmitted: true,
		orders.StatusReceived: true, orders.StatusOnHold: true,
	} {
		assert.False(t, s.CanTransition(s), "%s -> %s", s, s)
	}
}

func TestNotifiesCustomer(t *testing.T) {
	notify := []orders.Status{
		orders.StatusReceived, orders.StatusInspected, orders.StatusRepairing,
		orders.StatusReady, orders.StatusShipped, orders.StatusOnHold,
	}
	silent := []orders.Status{
		orders.StatusDraft, orders.StatusSubmitted,
		orders.StatusCompleted, orders.StatusCancelled,
	}
	for _, s := range notify {
		assert.True(t, s.NotifiesCustomer(), "%s", s)
	}
	for _, s := range silent {
		assert.False(t, s.NotifiesCustomer(), "%s", s)
	}
}

func TestParseStatus(t *testing.T) {
	st, ok := orders.ParseStatus("SHIPPED")
	require.True(t, ok)
	assert.Equal(t, orders.StatusShipped, st)
	assert.Equal(t, "Versendet", st.Label())

	_, ok = orders.ParseStatus("shipped")
	assert.False(t, ok)
	_, ok = orders.ParseStatus("UNKNOWN")
	assert.False(t, ok)
}

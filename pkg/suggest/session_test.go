package suggest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSessionStoreStaysBoundedUnderLoad stresses the store with far more
// distinct session ids than its capacity and checks it never grows past it,
// evicting the least-recently-used session instead.
func TestSessionStoreStaysBoundedUnderLoad(t *testing.T) {
	const capacity = 64
	store := newSessionStore(capacity)

	for i := 0; i < capacity*20; i++ {
		store.append(fmt.Sprintf("session-%d", i), "export csv")
	}

	assert.LessOrEqual(t, store.buffers.Len(), capacity)
}

func TestSessionStoreAppendIsCumulative(t *testing.T) {
	store := newSessionStore(8)
	assert.Equal(t, "exp", store.append("s1", "exp"))
	assert.Equal(t, "export", store.append("s1", "ort"))
}

func TestSessionStoreResetThenAppendStartsFresh(t *testing.T) {
	store := newSessionStore(8)
	store.append("s1", "export")
	store.reset("s1")
	assert.Equal(t, "csv", store.append("s1", "csv"))
}

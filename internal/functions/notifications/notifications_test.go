package notifications

import (
	"fmt"
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func record(i int) structs.NotificationRecord {
	return structs.NotificationRecord{
		ID:        fmt.Sprintf("n%010d", i),
		Titulo:    "Titulo",
		Mensaje:   "Mensaje",
		Timestamp: int64(i),
		Tipo:      "sistema",
	}
}

func records(n int) []structs.NotificationRecord {
	result := make([]structs.NotificationRecord, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, record(i))
	}
	return result
}

func TestCapped(t *testing.T) {
	assert.Len(t, capped(records(10)), 10)
	assert.Len(t, capped(records(maxRecords)), maxRecords)

	// over the cap the oldest entries fall off
	over := capped(records(maxRecords + 3))
	assert.Len(t, over, maxRecords)
	assert.Equal(t, record(3), over[0])
	assert.Equal(t, record(maxRecords+2), over[len(over)-1])
}

func TestNewestFirst(t *testing.T) {
	got := newestFirst(records(3))

	want := []structs.NotificationRecord{record(2), record(1), record(0)}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("newestFirst mismatch (-want +got):\n%v", diff)
	}

	assert.Empty(t, newestFirst(nil))
}

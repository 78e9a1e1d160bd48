package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueRemindersQueryUsesOnlyUpperCutoff(t *testing.T) {
	cutoff := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	query, args, err := dueRemindersQuery(cutoff).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "a.reminder_sent = $")
	assert.Contains(t, query, "a.appointment_date + a.start_time <= $")
	// Нижней границы по текущему времени нет: просроченная запись
	// без напоминания остается в выборке до отметки reminder_sent
	assert.NotContains(t, query, ">=")
	assert.NotContains(t, query, "NOW()")
	assert.Contains(t, args, cutoff)
}

package worker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRearmarJobIncrementaRequeues(t *testing.T) {
	entry := DLQEntry{
		OriginalQueue: QueueResumenArqueo,
		JobType:       "resumen_arqueo",
		Payload:       json.RawMessage(`{"arqueo_id":"abc"}`),
		Requeues:      1,
	}

	job, ok := rearmarJob(entry)
	require.True(t, ok)
	assert.Equal(t, "resumen_arqueo", job.Type)
	assert.Equal(t, 2, job.Requeues)
	assert.JSONEq(t, `{"arqueo_id":"abc"}`, string(job.Payload))
}

func TestRearmarJobAgotado(t *testing.T) {
	entry := DLQEntry{JobType: "resumen_arqueo", Requeues: maxDLQRequeues}

	_, ok := rearmarJob(entry)
	assert.False(t, ok)
}

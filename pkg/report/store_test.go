package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/gpucheck/pkg/capability"
	"github.com/orneryd/gpucheck/pkg/gpu"
	"github.com/orneryd/gpucheck/pkg/hostinfo"
)

func newTestReport(createdAt time.Time, passed bool) *Report {
	return &Report{
		CreatedAt:   createdAt,
		Fingerprint: "abcd1234",
		Host: hostinfo.HostInfo{
			Hostname:        "bench-01",
			OS:              "linux",
			Arch:            "amd64",
			CPUCoresLogical: 16,
			MemoryMB:        32768,
		},
		Backend: "cuda",
		Devices: []gpu.DeviceInfo{{
			Index:    0,
			Name:     "NVIDIA GeForce RTX 3080",
			Backend:  gpu.BackendCUDA,
			MemoryMB: 10240,
			CCMajor:  8,
			CCMinor:  6,
		}},
		Capability: capability.Default().Check(8, 6),
		Passed:     passed,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveGet(t *testing.T) {
	store := newTestStore(t)

	rep := newTestReport(time.Now(), true)
	require.NoError(t, store.Save(rep))
	require.NotEmpty(t, rep.ID, "Save should assign an ID")

	got, err := store.Get(rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)
	assert.Equal(t, "bench-01", got.Host.Hostname)
	assert.Equal(t, 1, got.DeviceCount())
	assert.Equal(t, 8, got.Devices[0].CCMajor)
	assert.True(t, got.Passed)
	assert.True(t, got.Capability.Satisfied)
}

func TestStoreGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("12345")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreList(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		rep := newTestReport(base.Add(time.Duration(i)*time.Minute), i%2 == 0)
		require.NoError(t, store.Save(rep))
	}

	reports, err := store.List()
	require.NoError(t, err)
	require.Len(t, reports, 3)

	// Newest first
	assert.True(t, reports[0].CreatedAt.After(reports[1].CreatedAt))
	assert.True(t, reports[1].CreatedAt.After(reports[2].CreatedAt))
}

func TestStoreListEmpty(t *testing.T) {
	store := newTestStore(t)

	reports, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestStorePrune(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(newTestReport(base.Add(time.Duration(i)*time.Minute), true)))
	}

	removed, err := store.Prune(2)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	reports, err := store.List()
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// The two newest survive
	assert.Equal(t, base.Add(4*time.Minute).Unix(), reports[0].CreatedAt.Unix())
	assert.Equal(t, base.Add(3*time.Minute).Unix(), reports[1].CreatedAt.Unix())
}

func TestStorePruneNothingToDo(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(newTestReport(time.Now(), true)))

	removed, err := store.Prune(10)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestStoreClosed(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.Save(newTestReport(time.Now(), true)), ErrClosed)
	_, err := store.Get("x")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = store.List()
	assert.ErrorIs(t, err, ErrClosed)

	// Double close is safe
	assert.NoError(t, store.Close())
}

func TestStorePersistence(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)

	rep := newTestReport(time.Now(), false)
	require.NoError(t, store.Save(rep))
	require.NoError(t, store.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(rep.ID)
	require.NoError(t, err)
	assert.False(t, got.Passed)
}

func TestReportSummary(t *testing.T) {
	rep := newTestReport(time.Now(), true)
	assert.Contains(t, rep.Summary(), "PASS")
	assert.Contains(t, rep.Summary(), "RTX 3080")

	empty := &Report{}
	assert.Contains(t, empty.Summary(), "FAIL")
	assert.Contains(t, empty.Summary(), "no compatible accelerator")
}

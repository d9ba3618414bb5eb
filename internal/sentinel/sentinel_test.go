package sentinel

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pkeffect/antigravity-architect/internal/doctor"
	"github.com/pkeffect/antigravity-architect/internal/scaffold"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func generate(t *testing.T) string {
	t.Helper()
	parent := t.TempDir()
	rep, err := scaffold.Generate(scaffold.Options{Name: "watched", ParentDir: parent, Keywords: []string{"python"}})
	require.NoError(t, err)
	return rep.Dir
}

func TestSentinel_RestoresDeletedFile(t *testing.T) {
	dir := generate(t)
	s, err := New(dir, Options{Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	target := filepath.Join(dir, ".agent", "rules", "00_identity.md")
	require.NoError(t, os.Remove(target))

	require.Eventually(t, func() bool {
		_, err := os.Stat(target)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	require.Eventually(t, func() bool { return s.Stats().Fixed >= 1 }, 2*time.Second, 20*time.Millisecond)
}

func TestSentinel_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".agent", "rules"), 0o755))

	calls := make(chan struct{}, 16)
	s, err := New(dir, Options{
		Debounce: 100 * time.Millisecond,
		Heal: func(string) (*doctor.Report, error) {
			calls <- struct{}{}
			return &doctor.Report{}, nil
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()
	<-calls // initial heal

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".agent", "rules", "x.md"), []byte("# x"), 0o644))
	}

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("heal never ran after burst")
	}
	time.Sleep(300 * time.Millisecond)
	assert.Len(t, calls, 0)
}

func TestSentinel_StopIsIdempotent(t *testing.T) {
	s, err := New(t.TempDir(), Options{Heal: func(string) (*doctor.Report, error) { return &doctor.Report{}, nil }})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	s.Stop()
	s.Stop()
}

func TestSentinel_ReportsMissingCriticalFiles(t *testing.T) {
	dir := generate(t)
	s, err := New(dir, Options{CriticalFiles: []string{".env", "SECURITY.md", "config/secrets.yaml"}})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Equal(t, []string{".env", "config/secrets.yaml"}, s.Stats().Missing)
	assert.Contains(t, s.Dirs(), filepath.Join(dir, "config"))
}

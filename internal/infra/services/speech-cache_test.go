package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/entities"
	"car-advisor/internal/infra/logger"
)

type fakeSpeechProvider struct {
	calls int32
	delay time.Duration
	err   error
}

func (p *fakeSpeechProvider) Synthesize(ctx context.Context, text string, emphasis []string) ([]byte, error) {
	atomic.AddInt32(&p.calls, 1)
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderDegraded, ctx.Err())
		case <-time.After(p.delay):
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return []byte("mp3-bytes:" + text), nil
}

func newTestSpeechCache(t *testing.T, p *fakeSpeechProvider) *SpeechCacheService {
	t.Helper()
	log := logger.NewLogger(context.Background(), false)
	return NewSpeechCacheService(log, p, t.TempDir(), time.Second, time.Millisecond)
}

func TestEnsureSynthesizesOnceAndCaches(t *testing.T) {
	p := &fakeSpeechProvider{}
	svc := newTestSpeechCache(t, p)

	path, err := svc.Ensure(context.Background(), "start", "hello there", nil)
	require.NoError(t, err)
	assert.Equal(t, "start.mp3", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes:hello there"), data)

	// Second call is a cache hit.
	again, err := svc.Ensure(context.Background(), "start", "hello there", nil)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&p.calls))

	cached, ok := svc.Lookup("start")
	assert.True(t, ok)
	assert.Equal(t, path, cached)
}

func TestEnsureSingleFlight(t *testing.T) {
	p := &fakeSpeechProvider{delay: 50 * time.Millisecond}
	svc := newTestSpeechCache(t, p)

	const callers = 10
	var wg sync.WaitGroup
	paths := make([]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path, err := svc.Ensure(context.Background(), "start", "hello", nil)
			assert.NoError(t, err)
			paths[i] = path
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&p.calls))
	for _, path := range paths {
		assert.Equal(t, paths[0], path)
	}
}

func TestEnsureProviderDegraded(t *testing.T) {
	p := &fakeSpeechProvider{err: fmt.Errorf("%w: upstream 500", apperrors.ErrProviderDegraded)}
	svc := newTestSpeechCache(t, p)

	_, err := svc.Ensure(context.Background(), "start", "hello", nil)
	assert.ErrorIs(t, err, apperrors.ErrProviderDegraded)

	_, ok := svc.Lookup("start")
	assert.False(t, ok)
}

func TestEnsureRetriesAfterFailure(t *testing.T) {
	p := &fakeSpeechProvider{err: errors.New("transient")}
	svc := newTestSpeechCache(t, p)

	_, err := svc.Ensure(context.Background(), "start", "hello", nil)
	require.Error(t, err)

	// A failed flight leaves no cache entry, so the next call tries again.
	p.err = nil
	path, err := svc.Ensure(context.Background(), "start", "hello", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.Equal(t, int32(2), atomic.LoadInt32(&p.calls))
}

func TestLoadCachedFilesSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "start.mp3"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644))

	p := &fakeSpeechProvider{}
	log := logger.NewLogger(context.Background(), false)
	svc := NewSpeechCacheService(log, p, dir, time.Second, time.Millisecond)

	path, ok := svc.Lookup("start")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "start.mp3"), path)
	_, ok = svc.Lookup("notes")
	assert.False(t, ok)

	// Indexed files never hit the provider again.
	_, err := svc.Ensure(context.Background(), "start", "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&p.calls))
}

func TestPrewarmSkipsDisabledAndCached(t *testing.T) {
	p := &fakeSpeechProvider{}
	svc := newTestSpeechCache(t, p)

	_, err := svc.Ensure(context.Background(), "cached", "already here", nil)
	require.NoError(t, err)
	atomic.StoreInt32(&p.calls, 0)

	nodes := []*entities.QuestionNode{
		{ID: "cached", Speech: &entities.Speech{Enabled: true, VoicePrompt: "already here"}},
		{ID: "silent"},
		{ID: "disabled", Speech: &entities.Speech{Enabled: false}},
		{ID: "fresh", Text: "fallback text", Speech: &entities.Speech{Enabled: true}},
	}
	summary := svc.Prewarm(context.Background(), nodes)

	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 3, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&p.calls))

	// The voice prompt was empty, so the node text was synthesized.
	path, ok := svc.Lookup("fresh")
	require.True(t, ok)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes:fallback text"), data)
}

func TestPrewarmCountsFailures(t *testing.T) {
	p := &fakeSpeechProvider{err: fmt.Errorf("%w: quota", apperrors.ErrProviderDegraded)}
	svc := newTestSpeechCache(t, p)

	nodes := []*entities.QuestionNode{
		{ID: "a", Speech: &entities.Speech{Enabled: true, VoicePrompt: "a"}},
		{ID: "b", Speech: &entities.Speech{Enabled: true, VoicePrompt: "b"}},
	}
	summary := svc.Prewarm(context.Background(), nodes)

	assert.Equal(t, 0, summary.Generated)
	assert.Equal(t, 2, summary.Failed)
}

func TestStats(t *testing.T) {
	p := &fakeSpeechProvider{}
	svc := newTestSpeechCache(t, p)

	_, err := svc.Ensure(context.Background(), "start", "hello", nil)
	require.NoError(t, err)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalFiles)
	assert.Contains(t, stats.Files, "start.mp3")
	assert.NotEqual(t, "0 Bytes", stats.TotalSize)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 Bytes", formatBytes(0))
	assert.Equal(t, "512 Bytes", formatBytes(512))
	assert.Equal(t, "1 KB", formatBytes(1024))
	assert.Equal(t, "1.5 KB", formatBytes(1536))
	assert.Equal(t, "1 MB", formatBytes(1024*1024))
}

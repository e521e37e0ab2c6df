package services

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
	"car-advisor/internal/infra/logger"
	"car-advisor/internal/infra/provider"

	"golang.org/x/sync/singleflight"
)

// SpeechCacheService maps question nodes to synthesized audio files on
// disk. At most one synthesis runs per node id system-wide; duplicate
// concurrent requests share the single in-flight call.
type SpeechCacheService struct {
	Logger   *logger.Logger
	Provider provider.ISpeechProvider

	cacheDir     string
	synthTimeout time.Duration
	prewarmDelay time.Duration

	mu    sync.RWMutex
	paths map[string]string
	group singleflight.Group
}

func NewSpeechCacheService(logger *logger.Logger, speechProvider provider.ISpeechProvider, cacheDir string, synthTimeout, prewarmDelay time.Duration) *SpeechCacheService {
	svc := &SpeechCacheService{
		Logger:       logger,
		Provider:     speechProvider,
		cacheDir:     cacheDir,
		synthTimeout: synthTimeout,
		prewarmDelay: prewarmDelay,
		paths:        make(map[string]string),
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		logger.Error(fmt.Sprintf("Failed to create audio cache directory %s: %v", cacheDir, err))
		return svc
	}
	svc.loadCachedFiles()
	return svc
}

// loadCachedFiles indexes audio files that survived a previous run.
func (s *SpeechCacheService) loadCachedFiles() {
	files, err := os.ReadDir(s.cacheDir)
	if err != nil {
		return
	}
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".mp3") {
			nodeID := strings.TrimSuffix(file.Name(), ".mp3")
			s.paths[nodeID] = filepath.Join(s.cacheDir, file.Name())
		}
	}
	if len(s.paths) > 0 {
		s.Logger.Info(fmt.Sprintf("Loaded %d cached audio files from %s", len(s.paths), s.cacheDir))
	}
}

// Lookup reports the cached audio path without triggering synthesis.
func (s *SpeechCacheService) Lookup(nodeID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path, ok := s.paths[nodeID]
	return path, ok
}

// Ensure returns the cached audio path for nodeID, synthesizing and
// persisting it on a miss. Provider errors come back wrapped as
// ErrProviderDegraded; the interview turn proceeds without audio.
func (s *SpeechCacheService) Ensure(ctx context.Context, nodeID, text string, emphasis []string) (string, error) {
	if path, ok := s.Lookup(nodeID); ok {
		return path, nil
	}

	result, err, _ := s.group.Do(nodeID, func() (interface{}, error) {
		// Re-check under the flight: a concurrent call may have won.
		if path, ok := s.Lookup(nodeID); ok {
			return path, nil
		}

		synthCtx, cancel := context.WithTimeout(ctx, s.synthTimeout)
		defer cancel()

		audio, err := s.Provider.Synthesize(synthCtx, text, emphasis)
		if err != nil {
			return "", err
		}

		path := filepath.Join(s.cacheDir, nodeID+".mp3")
		if err := os.WriteFile(path, audio, 0o644); err != nil {
			return "", fmt.Errorf("%w: persisting audio: %v", apperrors.ErrProviderDegraded, err)
		}

		s.mu.Lock()
		s.paths[nodeID] = path
		s.mu.Unlock()
		return path, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Prewarm synthesizes audio for every speech-enabled node not yet cached,
// sleeping a fixed delay between provider calls to respect its rate limit.
func (s *SpeechCacheService) Prewarm(ctx context.Context, nodes []*entities.QuestionNode) dto.PrewarmSummary {
	var summary dto.PrewarmSummary
	for _, node := range nodes {
		if node.Speech == nil || !node.Speech.Enabled {
			summary.Skipped++
			continue
		}
		if _, ok := s.Lookup(node.ID); ok {
			summary.Skipped++
			continue
		}

		text := node.Speech.VoicePrompt
		if text == "" {
			text = node.Text
		}
		if _, err := s.Ensure(ctx, node.ID, text, node.Speech.Emphasis); err != nil {
			s.Logger.Error(fmt.Sprintf("Failed to pre-generate audio for %s: %v", node.ID, err))
			summary.Failed++
		} else {
			summary.Generated++
		}

		select {
		case <-ctx.Done():
			return summary
		case <-time.After(s.prewarmDelay):
		}
	}
	return summary
}

// Stats summarizes the on-disk cache, mostly for debugging.
func (s *SpeechCacheService) Stats() (dto.AudioStats, error) {
	entries, err := os.ReadDir(s.cacheDir)
	if err != nil {
		return dto.AudioStats{}, err
	}

	stats := dto.AudioStats{Files: []string{}}
	var totalSize int64
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".mp3") {
			continue
		}
		stats.TotalFiles++
		stats.Files = append(stats.Files, entry.Name())
		if info, err := entry.Info(); err == nil {
			totalSize += info.Size()
		}
	}
	stats.TotalSize = formatBytes(totalSize)
	return stats, nil
}

func formatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return fmt.Sprintf("%g %s", value, sizes[i])
}

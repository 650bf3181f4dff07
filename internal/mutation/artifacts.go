package mutation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Artifact is an exported file ready to hand to the user.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// ArtifactSink delivers an exported artifact and returns where it went.
type ArtifactSink interface {
	Save(ctx context.Context, artifact Artifact) (string, error)
}

// DirSink writes artifacts into a directory, creating it when needed.
type DirSink struct {
	Dir string
}

func (s DirSink) Save(_ context.Context, artifact Artifact) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(artifact.Name))
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", artifact.Name, err)
	}
	return path, nil
}

func exportName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.json", prefix, now.Format("2006-01-02"))
}

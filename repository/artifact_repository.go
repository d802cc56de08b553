package repository

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/recommender"
)

const pointerFile = "current_model.json"

// fileArtifactRepository keeps one gob-encoded correlation table per training
// run under modelsDir, with current_model.json naming the live one. Both the
// artifact and the pointer are written to a temp file first and renamed into
// place, and the pointer only advances after the artifact is durable, so a
// reader either sees the previous complete model or the new complete model.
type fileArtifactRepository struct {
	modelsDir string
}

func NewFileArtifactRepository(modelsDir string) domain.ArtifactRepository {
	return &fileArtifactRepository{modelsDir: modelsDir}
}

func (r *fileArtifactRepository) Save(ctx context.Context, m *recommender.Matrix, version string) (domain.ModelPointer, error) {
	if err := os.MkdirAll(r.modelsDir, 0o755); err != nil {
		return domain.ModelPointer{}, fmt.Errorf("create models dir: %w", err)
	}

	artifactPath := filepath.Join(r.modelsDir, fmt.Sprintf("model_%s.gob", version))
	if err := writeAtomic(artifactPath, func(f *os.File) error {
		return gob.NewEncoder(f).Encode(m)
	}); err != nil {
		return domain.ModelPointer{}, fmt.Errorf("write artifact: %w", err)
	}

	pointer := domain.ModelPointer{ModelVersion: version, ArtifactPath: artifactPath}
	if err := writeAtomic(filepath.Join(r.modelsDir, pointerFile), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "    ")
		return enc.Encode(pointer)
	}); err != nil {
		return domain.ModelPointer{}, fmt.Errorf("advance model pointer: %w", err)
	}
	return pointer, nil
}

func (r *fileArtifactRepository) Load(ctx context.Context, p domain.ModelPointer) (*recommender.Matrix, error) {
	f, err := os.Open(p.ArtifactPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotTrained
		}
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	var m recommender.Matrix
	if err := gob.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", p.ArtifactPath, err)
	}
	return &m, nil
}

func (r *fileArtifactRepository) Current(ctx context.Context) (domain.ModelPointer, error) {
	data, err := os.ReadFile(filepath.Join(r.modelsDir, pointerFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ModelPointer{}, domain.ErrNotTrained
		}
		return domain.ModelPointer{}, fmt.Errorf("read model pointer: %w", err)
	}
	var p domain.ModelPointer
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.ModelPointer{}, fmt.Errorf("decode model pointer: %w", err)
	}
	if _, err := os.Stat(p.ArtifactPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ModelPointer{}, domain.ErrNotTrained
		}
		return domain.ModelPointer{}, fmt.Errorf("stat artifact: %w", err)
	}
	return p, nil
}

// writeAtomic writes via a temp file in the target directory and renames it
// over path, so a crash mid-write never leaves a torn file behind.
func writeAtomic(path string, write func(*os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

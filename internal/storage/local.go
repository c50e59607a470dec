package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps files on disk under a root directory and serves them
// through the router's /files route.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, publicBaseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimSuffix(publicBaseURL, "/")}, nil
}

// Root is the directory the HTTP layer serves as /files.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Upload(path string, data []byte) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStore) Find(prefix, filename string) (string, bool, error) {
	full, err := s.resolve(filepath.Join(prefix, filename))
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to stat file: %w", err)
	}
	return filepath.ToSlash(filepath.Join(prefix, filename)), true, nil
}

func (s *LocalStore) PublicURL(path string) string {
	return s.baseURL + "/files/" + strings.TrimPrefix(filepath.ToSlash(path), "/")
}

// resolve joins the path under root and rejects traversal outside it.
func (s *LocalStore) resolve(path string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage path %q", path)
	}
	return full, nil
}

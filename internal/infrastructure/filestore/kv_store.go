// Package filestore persiste las colecciones en un único documento JSON en disco,
// equivalente al almacenamiento local del navegador para un solo caixa.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/mb-vendas/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore guarda un objeto JSON {clave: colección}. Las escrituras reemplazan el archivo
// con rename atómico, por lo que un SetMany se aplica completo o no se aplica.
type KVStore struct {
	path string
	mu   sync.Mutex
}

// NewKVStore crea el almacén sobre path; el archivo se crea en la primera escritura.
func NewKVStore(path string) *KVStore {
	return &KVStore{path: path}
}

// Get devuelve el valor o nil si la clave no existe.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, nil
	}
	return []byte(v), nil
}

// GetMany lee el documento una sola vez y devuelve las claves pedidas.
func (s *KVStore) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			out[k] = []byte(v)
		}
	}
	return out, nil
}

// SetMany fusiona los valores en el documento y lo reescribe. Cada valor debe ser JSON válido.
func (s *KVStore) SetMany(ctx context.Context, values map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for k, v := range values {
		if !json.Valid(v) {
			return fmt.Errorf("filestore: valor no es JSON válido para %q", k)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	for k, v := range values {
		doc[k] = json.RawMessage(append([]byte(nil), v...))
	}
	return s.writeDocument(doc)
}

func (s *KVStore) readDocument() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: leer %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("filestore: decodificar %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *KVStore) writeDocument(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: codificar: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("filestore: crear directorio: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: archivo temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: escribir: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("filestore: reemplazar %s: %w", s.path, err)
	}
	return nil
}

// memory.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package storage

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// MemoryObject is one stored blob
type MemoryObject struct {
	ContentType string
	Data        []byte
}

// MemoryStore is an in-process ObjectStore for local runs and tests.
// Its signed URLs carry an HMAC over key and expiry that Verify checks.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]MemoryObject
	bucket  string
	baseURL string
	key     []byte
	puts    int

	// DeleteErr, when set, is returned by Delete without removing anything.
	DeleteErr error
}

// NewMemoryStore creates an empty store. An empty signingKey generates a random one.
func NewMemoryStore(bucket, baseURL, signingKey string) *MemoryStore {
	key := []byte(signingKey)
	if len(key) == 0 {
		key = make([]byte, 32)
		_, _ = rand.Read(key)
	}
	if baseURL == "" {
		baseURL = "http://localhost/objects"
	}
	return &MemoryStore{
		objects: make(map[string]MemoryObject),
		bucket:  bucket,
		baseURL: baseURL,
		key:     key,
	}
}

// Put stores a copy of data.
func (s *MemoryStore) Put(_ context.Context, key, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = MemoryObject{ContentType: contentType, Data: buf}
	s.puts++
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	if _, ok := s.objects[key]; !ok {
		return fmt.Errorf("memory delete %s: %w", key, ErrObjectNotFound)
	}
	delete(s.objects, key)
	return nil
}

// SignedURL returns a URL valid until now+ttl.
func (s *MemoryStore) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	expires := time.Now().Add(ttl).Unix()
	q := url.Values{}
	q.Set("expires", strconv.FormatInt(expires, 10))
	q.Set("signature", s.sign(key, expires))
	return fmt.Sprintf("%s/%s/%s?%s", s.baseURL, s.bucket, key, q.Encode()), nil
}

// Verify reports whether signature is valid for key and has not expired.
func (s *MemoryStore) Verify(key string, expires int64, signature string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	return hmac.Equal([]byte(s.sign(key, expires)), []byte(signature))
}

// URI returns the memory:// location of key.
func (s *MemoryStore) URI(key string) string {
	return fmt.Sprintf("memory://%s/%s", s.bucket, key)
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// Get returns the object stored under key.
func (s *MemoryStore) Get(key string) (MemoryObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj, ok
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Puts returns how many writes the store has accepted.
func (s *MemoryStore) Puts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puts
}

func (s *MemoryStore) sign(key string, expires int64) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(key))
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatInt(expires, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

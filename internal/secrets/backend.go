// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package secrets

import (
	"context"
	"errors"
)

var (
	// ErrSecretNotFound is returned when a secret key does not exist in the backend.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrBackendUnavailable is returned when a backend cannot be used in the current environment.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// SecretBackend provides storage for sensitive values.
type SecretBackend interface {
	// Name returns the backend identifier.
	Name() string

	// Get retrieves a secret by key. Returns ErrSecretNotFound if not present.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a secret.
	Set(ctx context.Context, key string, value string) error

	// Delete removes a secret. Returns ErrSecretNotFound if not present.
	Delete(ctx context.Context, key string) error

	// Available returns true if this backend is usable in the current environment.
	Available() bool
}

// Lookup returns the secret stored under key. A missing secret or an
// unavailable backend yields "" and no error; only unexpected backend
// failures are returned.
func Lookup(ctx context.Context, b SecretBackend, key string) (string, error) {
	if b == nil || !b.Available() {
		return "", nil
	}
	value, err := b.Get(ctx, key)
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, ErrSecretNotFound), errors.Is(err, ErrBackendUnavailable):
		return "", nil
	default:
		return "", err
	}
}

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

// Package integration holds the catalogue of vendor integrations and
// activates the ones an operator enables.
//
// Activation is default-deny: a module becomes tools only when its
// normalized name appears in the allow-list.
package integration

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/tombee/soarmcp/internal/action"
	"github.com/tombee/soarmcp/internal/log"
	"github.com/tombee/soarmcp/internal/naming"
)

// RegisterFunc adds one integration's tools to r.
type RegisterFunc func(r *action.Registrar) error

// Failure records a module that could not be registered.
type Failure struct {
	Name string
	Err  error
}

// Activation reports what Activate did.
type Activation struct {
	// Enabled lists the modules registered by this call.
	Enabled []string
	// Failed lists modules whose registration returned an error or panicked.
	Failed []Failure
	// Unknown lists allow-list names that match no module.
	Unknown []string
}

// Registry maps normalized integration names to their register functions.
type Registry struct {
	logger *slog.Logger

	mu        sync.Mutex
	entries   map[string]RegisterFunc
	activated map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:    log.WithComponent(logger, "integrations"),
		entries:   make(map[string]RegisterFunc),
		activated: make(map[string]struct{}),
	}
}

// Register stores fn under naming.Normalize(name).
func (r *Registry) Register(name string, fn RegisterFunc) error {
	key := naming.Normalize(name)
	if key == "" {
		return fmt.Errorf("integration name %q normalizes to an empty key", name)
	}
	if fn == nil {
		return fmt.Errorf("integration %q has no register function", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.entries[key]; dup {
		return fmt.Errorf("integration %q is already registered", key)
	}
	r.entries[key] = fn
	return nil
}

// Names returns every known integration key in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseAllowList splits a comma-separated list into normalized, de-duplicated
// names, keeping first-seen order.
func ParseAllowList(raw string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		key := naming.Normalize(strings.TrimSpace(part))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Activate registers every module whose key is in allow. Modules are
// visited in sorted order. A module that fails or panics is skipped and
// the rest continue. Modules activated by an earlier call are not
// registered again.
func (r *Registry) Activate(reg *action.Registrar, allow []string) Activation {
	var result Activation

	wanted := make(map[string]struct{}, len(allow))
	for _, name := range allow {
		if key := naming.Normalize(name); key != "" {
			wanted[key] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		r.logger.Info("No integrations enabled")
		return result
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range wanted {
		if _, ok := r.entries[key]; !ok {
			result.Unknown = append(result.Unknown, key)
		}
	}
	sort.Strings(result.Unknown)
	for _, key := range result.Unknown {
		r.logger.Warn("unknown integration in allow-list", log.IntegrationKey, key)
	}

	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := wanted[key]; !ok {
			continue
		}
		if _, done := r.activated[key]; done {
			continue
		}
		if err := safeRegister(r.entries[key], reg); err != nil {
			r.logger.Error("failed to register integration", log.IntegrationKey, key, log.Error(err))
			result.Failed = append(result.Failed, Failure{Name: key, Err: err})
			continue
		}
		r.activated[key] = struct{}{}
		result.Enabled = append(result.Enabled, key)
		r.logger.Info("registered integration", log.IntegrationKey, key)
	}

	return result
}

func safeRegister(fn RegisterFunc, reg *action.Registrar) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic during registration: %v", p)
		}
	}()
	return fn(reg)
}

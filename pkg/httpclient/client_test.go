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

package httpclient

import (
	"crypto/tls"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_ValidConfig(t *testing.T) {
	cfg := DefaultConfig()

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.Timeout != cfg.Timeout {
		t.Errorf("expected timeout %v, got %v", cfg.Timeout, client.Timeout)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 0

	client, err := New(cfg)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestNew_TLSConfiguration(t *testing.T) {
	client, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	lt, ok := client.Transport.(*loggingTransport)
	if !ok {
		t.Fatalf("expected *loggingTransport, got %T", client.Transport)
	}
	base, ok := lt.base.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", lt.base)
	}
	if base.TLSClientConfig.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected TLS 1.2 minimum, got %x", base.TLSClientConfig.MinVersion)
	}
	if base.MaxIdleConnsPerHost != 10 {
		t.Errorf("expected 10 idle conns per host, got %d", base.MaxIdleConnsPerHost)
	}
}

func TestNew_MissingCAFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CAFile = filepath.Join(t.TempDir(), "missing.pem")

	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for missing CA file")
	}
}

func TestNew_CAFileWithoutCertificates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pem")
	if err := os.WriteFile(path, []byte("not a certificate"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.CAFile = path

	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for CA file without certificates")
	}
}

func TestNew_CAFileTrustsServer(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "ca.pem")
	block := &pem.Block{Type: "CERTIFICATE", Bytes: server.Certificate().Raw}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.CAFile = path
	cfg.Timeout = 5 * time.Second
	client, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
}

func TestNew_UntrustedServerFails(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	resp, err := client.Get(server.URL)
	if err == nil {
		resp.Body.Close()
		t.Fatal("expected certificate error for self-signed server")
	}
}

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

/*
Package secrets stores the SOAR app key in the OS keychain.

The keychain is the last place the app key is looked up, after the config
file and SOAR_APP_KEY. Supported keychains:

  - macOS: Keychain Access
  - Linux: Secret Service API (GNOME Keyring, KWallet)
  - Windows: Credential Manager

# Usage

	kc := secrets.NewKeychainBackend()
	key, err := kc.Get(ctx, secrets.AppKeyItem)
	if errors.Is(err, secrets.ErrSecretNotFound) {
	    // not stored
	}

Tests call keyring.MockInit() to replace the OS keychain with an
in-memory store.
*/
package secrets

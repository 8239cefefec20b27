// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SecretReferenceContentType marks a remote setting whose value is a
// reference to a vault secret rather than the value itself.
const SecretReferenceContentType = "application/vnd.microsoft.appconfig.keyvaultref+json;charset=utf-8"

// RemoteSetting is one key/value item returned by the remote configuration
// service.
type RemoteSetting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Label       string `json:"label,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// IsSecretReference reports whether the setting points into a vault.
func (s RemoteSetting) IsSecretReference() bool {
	return s.ContentType == SecretReferenceContentType
}

// RemoteSettingsPage is the body of a remote listing response.
type RemoteSettingsPage struct {
	Items []RemoteSetting `json:"items"`
}

// SecretValue is the body of a vault secret response.
type SecretValue struct {
	Value string `json:"value"`
}

// SecretReference is the JSON value of a secret-reference setting.
type SecretReference struct {
	URI string `json:"uri"`
}

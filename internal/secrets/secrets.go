// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory is one secret: the filename is the key name and
// the trimmed file contents are the value.
//
// Supported key files: uniprot-contact-email.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// ContactEmailKey names the secret holding the contact address sent to
// UniProt in the User-Agent header.
const ContactEmailKey = "uniprot-contact-email"

// Secrets maps key names to values.
type Secrets map[string]string

// Load reads the secret files in dir. A missing directory yields no
// secrets. Unreadable files are logged as warnings and skipped.
func Load(dir string, log zerolog.Logger) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return Secrets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := Secrets{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		value, err := readSecret(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warn().Err(err).Str("secret", entry.Name()).Msg("could not read secret")
			continue
		}
		if value != "" {
			s[entry.Name()] = value
		}
	}
	return s, nil
}

func readSecret(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Keys returns the loaded key names in order, without their values.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ContactEmail returns the configured contact address. Values that do not
// look like a single address are ignored so they never reach a header.
func (s Secrets) ContactEmail() (string, bool) {
	email := s[ContactEmailKey]
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t\r\n()<>") {
		return "", false
	}
	return email, true
}

// UserAgent appends the contact email to base, if one is configured.
func (s Secrets) UserAgent(base string) string {
	email, ok := s.ContactEmail()
	if !ok {
		return base
	}
	return fmt.Sprintf("%s (mailto:%s)", base, email)
}

package auth

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/malq-cli/malq/filesystem"
	"github.com/zalando/go-keyring"
)

// FileBackend keeps the token as plaintext in a single file.
type FileBackend struct {
	Path string
}

func (b FileBackend) Load() (string, error) {
	data, err := filesystem.API().ReadFile(b.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (b FileBackend) Save(token string) error {
	if err := filesystem.API().MkdirAll(filepath.Dir(b.Path), os.ModePerm); err != nil {
		return err
	}
	return filesystem.API().WriteFile(b.Path, []byte(token), 0600)
}

func (b FileBackend) Delete() error {
	return filesystem.Delete(b.Path)
}

func (b FileBackend) Location() string {
	return b.Path
}

// KeyringBackend keeps the token in the system keyring.
type KeyringBackend struct {
	Service string
	User    string
}

func (b KeyringBackend) Load() (string, error) {
	token, err := keyring.Get(b.Service, b.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

func (b KeyringBackend) Save(token string) error {
	return keyring.Set(b.Service, b.User, token)
}

func (b KeyringBackend) Delete() error {
	err := keyring.Delete(b.Service, b.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

func (b KeyringBackend) Location() string {
	return "keyring " + b.Service + "/" + b.User
}

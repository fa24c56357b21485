//go:build windows

package regstore

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// CurrentUser is the HKEY_CURRENT_USER Store.
type CurrentUser struct{}

// System returns the Store backed by the real registry.
func System() Store {
	return CurrentUser{}
}

func wrap(key, name string, err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf(`HKCU\%s\%s: %w`, key, name, ErrNotExist)
	}

	return fmt.Errorf(`HKCU\%s\%s: %w`, key, name, err)
}

func (CurrentUser) GetString(key, name string) (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		return "", wrap(key, name, err)
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", wrap(key, name, err)
	}

	return v, nil
}

func (CurrentUser) SetString(key, name, value string) error {
	return withWritableKey(key, name, func(k registry.Key) error {
		return k.SetStringValue(name, value)
	})
}

func (CurrentUser) SetExpandString(key, name, value string) error {
	return withWritableKey(key, name, func(k registry.Key) error {
		return k.SetExpandStringValue(name, value)
	})
}

func (CurrentUser) GetInteger(key, name string) (uint64, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		return 0, wrap(key, name, err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, wrap(key, name, err)
	}

	return v, nil
}

func (CurrentUser) SetDWord(key, name string, value uint32) error {
	return withWritableKey(key, name, func(k registry.Key) error {
		return k.SetDWordValue(name, value)
	})
}

func withWritableKey(key, name string, fn func(registry.Key) error) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, key, registry.SET_VALUE)
	if err != nil {
		return wrap(key, name, err)
	}
	defer k.Close()

	if err := fn(k); err != nil {
		return wrap(key, name, err)
	}

	return nil
}

package cli

import (
	"errors"
	"io/fs"

	"github.com/courtside/courtside/internal/filex"
)

var errNotLoggedIn = errors.New("not logged in; run 'courtside login'")

func saveToken(path, token string) error {
	return filex.WritePrivate(path, []byte(token))
}

func loadToken(path string) (string, error) {
	token, err := filex.ReadTrimmed(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errNotLoggedIn
		}
		return "", err
	}
	if token == "" {
		return "", errNotLoggedIn
	}
	return token, nil
}

func removeToken(path string) error {
	return filex.RemoveIfExists(path)
}

package envvar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envvar "github.com/taskmgr/mini-task-manager/internal/envar"
)

type fakeProvider struct {
	values map[string]string
}

func (p *fakeProvider) Get(key string) (string, error) {
	val, ok := p.values[key]
	if !ok {
		return "", errors.New("unknown secret")
	}

	return val, nil
}

func TestLoad(t *testing.T) {
	t.Run("OK: empty filename is a no-op", func(t *testing.T) {
		require.NoError(t, envvar.Load(""))
	})

	t.Run("ERR: missing file", func(t *testing.T) {
		require.Error(t, envvar.Load("no-such.env"))
	})
}

func TestConfiguration_Get(t *testing.T) {
	t.Run("OK: plain environment variable", func(t *testing.T) {
		t.Setenv("DATABASE_HOST", "localhost")

		conf := envvar.New(&fakeProvider{})

		got, err := conf.Get("DATABASE_HOST")
		require.NoError(t, err)
		assert.Equal(t, "localhost", got)
	})

	t.Run("OK: missing variable returns empty value", func(t *testing.T) {
		conf := envvar.New(&fakeProvider{})

		got, err := conf.Get("NEVER_SET")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("OK: SECURE suffix resolves through the provider", func(t *testing.T) {
		t.Setenv("DATABASE_PASSWORD", "plain")
		t.Setenv("DATABASE_PASSWORD_SECURE", "/database:password")

		conf := envvar.New(&fakeProvider{values: map[string]string{
			"/database:password": "secret",
		}})

		got, err := conf.Get("DATABASE_PASSWORD")
		require.NoError(t, err)
		assert.Equal(t, "secret", got)
	})

	t.Run("ERR: provider failure propagates", func(t *testing.T) {
		t.Setenv("DATABASE_PASSWORD_SECURE", "/database:password")

		conf := envvar.New(&fakeProvider{})

		_, err := conf.Get("DATABASE_PASSWORD")
		require.Error(t, err)
	})
}

package envvar

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/taskmgr/mini-task-manager/internal"
)

//Provider represents the types supporting secret values lookup, values that
//shouldn't live in plain environment variables.
type Provider interface {
	Get(key string) (string, error)
}

//Configuration represents the required settings to run the services, it
//combines plain environment variables with values coming from a Provider.
type Configuration struct {
	provider Provider
}

//Load reads the env filename and loads it into the process environment, it is
//meant to be called once during bootstrap. An empty filename is a no-op.
func Load(filename string) error {
	if filename == "" {
		return nil
	}

	if err := godotenv.Load(filename); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "loading env var file")
	}

	return nil
}

//New ...
func New(provider Provider) *Configuration {
	return &Configuration{
		provider: provider,
	}
}

//Get returns the value for the requested key, an environment variable with the
//"SECURE" suffix indicates the actual value must be looked up in the Provider,
//using the environment variable value as the secret path.
func (c *Configuration) Get(key string) (string, error) {
	res := os.Getenv(key)

	valSecret := os.Getenv(strings.ToUpper(key) + "_SECURE")
	if valSecret != "" {
		valSecretRes, err := c.provider.Get(valSecret)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "provider.Get")
		}

		res = valSecretRes
	}

	return res, nil
}

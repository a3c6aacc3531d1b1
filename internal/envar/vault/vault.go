package vault

import (
	"strings"
	"sync"

	vault "github.com/hashicorp/vault/api"

	"github.com/taskmgr/mini-task-manager/internal"
)

//Provider allows retrieving values from a HashiCorp Vault KV Secrets Engine.
type Provider struct {
	client *vault.Client
	path   string

	mu      sync.Mutex
	results map[string]map[string]interface{}
}

//New instantiates a Provider rooted at the received mount path.
func New(token, addr, path string) (*Provider, error) {
	config := &vault.Config{
		Address: addr,
	}

	client, err := vault.NewClient(config)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "vault.NewClient")
	}

	client.SetToken(token)

	return &Provider{
		client:  client,
		path:    path,
		results: make(map[string]map[string]interface{}),
	}, nil
}

//Get reads a secret value, key is expressed as "<secret path>:<field>",
//relative to the Provider root path. Secrets are cached after the first read.
func (p *Provider) Get(key string) (string, error) {
	path, field, found := strings.Cut(key, ":")
	if !found {
		return "", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "missing field in %q", key)
	}

	data, err := p.read(p.path + path)
	if err != nil {
		return "", err
	}

	res, ok := data[field].(string)
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "secret field %q not found", field)
	}

	return res, nil
}

func (p *Provider) read(path string) (map[string]interface{}, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if data, ok := p.results[path]; ok {
		return data, nil
	}

	secret, err := p.client.Logical().Read(path)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Logical.Read")
	}

	if secret == nil || secret.Data == nil {
		return nil, internal.NewErrorf(internal.ErrorCodeNotFound, "secret %q not found", path)
	}

	// KV v2 nests the actual values under "data".
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		data = secret.Data
	}

	p.results[path] = data

	return data, nil
}

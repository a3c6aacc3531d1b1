package internal

import (
	esv7 "github.com/elastic/go-elasticsearch/v7"

	"github.com/taskmgr/mini-task-manager/internal"
	envvar "github.com/taskmgr/mini-task-manager/internal/envar"
)

//NewElasticSearch instantiates the ElasticSearch client using configuration
//defined in environment variables.
func NewElasticSearch(conf *envvar.Configuration) (es *esv7.Client, err error) {
	addr, err := conf.Get("ELASTICSEARCH_URL")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get ELASTICSEARCH_URL")
	}

	config := esv7.Config{}

	if addr != "" {
		config.Addresses = []string{addr}
	}

	es, err = esv7.NewClient(config)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "elasticsearch.NewClient")
	}

	res, err := es.Info()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "es.Info")
	}

	defer func() {
		err = res.Body.Close()
	}()

	return es, nil
}

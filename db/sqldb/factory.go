package sqldb

import "fmt"

// ClientFactory constructs a Client for one dialect from its Conf.
// Driver packages register themselves under impls/ via RegisterFactory.
type ClientFactory func(conf *Conf) (Client, error)

var registry = map[string]ClientFactory{}

func RegisterFactory(dbType string, factory ClientFactory) {
	registry[dbType] = factory
}

func New(dbType string, conf *Conf) (Client, error) {
	factory, ok := registry[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
	return factory(conf)
}

package providerdrv

import (
	"fmt"

	"github.com/funcops/funcops/domain/model"
)

// Driver abstracts provider-specific stack operations. Implementations live
// under adapters/drivers/provider/<name> and should return a provider
// identifier such as "azure" via ID().
type Driver interface {
	// ID returns the provider identifier (e.g., "azure").
	ID() string

	model.StackPort
}

// driverFactory is a constructor function for a provider driver.
type driverFactory func(settings map[string]string) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// New constructs the named driver with the given settings.
func New(name string, settings map[string]string) (Driver, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider driver: %s", name)
	}
	return factory(settings)
}

package catalog

import (
	_ "embed"
	"sync"
)

//go:embed data/catalog.yaml
var packaged []byte

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustParse(packaged)
})

// Default returns the catalog shipped with the library. It is built on first
// use and shared afterwards.
func Default() *Catalog {
	return defaultCatalog()
}

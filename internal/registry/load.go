package registry

// LoadChains returns the chain registry for path, or the built-in chains when path is empty
func LoadChains(loader ChainRegistryLoader, path string) (ChainRegistry, error) {
	if path == "" {
		return NewChainRegistry(DefaultChains())
	}
	return loader.Load(path)
}

// LoadDenylist returns the denylist for path, or an empty denylist when path is empty
func LoadDenylist(loader DenylistRegistryLoader, path string) (DenylistRegistry, error) {
	if path == "" {
		return NewDenylist(nil)
	}
	return loader.Load(path)
}

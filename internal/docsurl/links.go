package docsurl

// StoreURL links into the store, e.g. StoreURL("checkout").
func (r *Resolver) StoreURL(path string) string {
	return "https://" + r.storeHost + "/" + path
}

// LearnURL links into the learning section of the docs host.
func (r *Resolver) LearnURL(path string) string {
	return "https://" + r.docsHost + "/learn/" + path
}

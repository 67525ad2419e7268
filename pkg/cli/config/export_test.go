package config

// NewTaxonomyForTest creates a Taxonomy config for testing purposes
func NewTaxonomyForTest(path string) *Taxonomy {
	return &Taxonomy{path: path}
}

// NewCatalogForTest creates a Catalog config for testing purposes
func NewCatalogForTest(path string, seed bool) *Catalog {
	return &Catalog{path: path, seed: seed}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID, databaseID string) *Repository {
	return &Repository{
		backend:    backend,
		projectID:  projectID,
		databaseID: databaseID,
	}
}

package model

// Option is one selectable game variant. The catalog is fixed at process
// start; sessions reference options by id only, never by copy.
type Option struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Catalog is the ordered list of options offered by every session.
type Catalog []Option

// Has reports whether an option with the given id exists in the catalog.
func (c Catalog) Has(id string) bool {
	for _, opt := range c {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Label returns the display label for the given option id, or the id
// itself when the option is unknown.
func (c Catalog) Label(id string) string {
	for _, opt := range c {
		if opt.ID == id {
			return opt.Label
		}
	}
	return id
}

package component

// Persistent marks an entity whose state is written to save files under ID.
type Persistent struct {
	ID   string
	Save bool
}

var PersistentComponent = NewComponent[Persistent]()

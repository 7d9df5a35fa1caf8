package component

// SaveRequest asks PersistenceSystem to write a save file this tick.
type SaveRequest struct{}

var SaveRequestComponent = NewComponent[SaveRequest]()

// LoadRequest asks PersistenceSystem to restore power-ups from the save file.
type LoadRequest struct{}

var LoadRequestComponent = NewComponent[LoadRequest]()

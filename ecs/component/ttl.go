package component

// TTL removes its entity after Frames update ticks. Frames of zero removes
// it on the next TTLSystem pass.
type TTL struct {
	Frames int
	Reason string
}

var TTLComponent = NewComponent[TTL]()

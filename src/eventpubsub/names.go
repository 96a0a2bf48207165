package eventpubsub

const (
	GridCellComputedEvent = "GridCellComputedEvent"
	GridCompletedEvent    = "GridCompletedEvent"
)

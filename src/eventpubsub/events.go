package eventpubsub

import "github.com/jiaming2012/option-pricer/src/models"

// GridCellComputed is published once per collected grid cell.
type GridCellComputed struct {
	RunID     string
	StrikeIdx int
	SigmaIdx  int
	Strike    float64
	Sigma     float64
	Quote     models.PriceQuote
}

// GridCompleted is published after every cell of a run has been collected.
type GridCompleted struct {
	RunID     string
	CellCount int
}

func PublishGridCellComputed(event GridCellComputed) {
	Publish(GridCellComputedEvent, event)
}

func PublishGridCompleted(event GridCompleted) {
	Publish(GridCompletedEvent, event)
}

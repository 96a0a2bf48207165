package models

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ResultGrid is a dense strike x sigma matrix of price quotes. Cells are
// written exactly once, keyed by grid position, so the order in which
// asynchronous results arrive does not matter.
type ResultGrid struct {
	Strikes []float64
	Sigmas  []float64

	cells     [][]PriceQuote
	populated [][]bool
}

// GridRecordDTO is one flattened grid cell, used for CSV export.
type GridRecordDTO struct {
	Strike       float64 `csv:"strike"`
	Sigma        float64 `csv:"sigma"`
	EuropeanCall float64 `csv:"european_call"`
	EuropeanPut  float64 `csv:"european_put"`
	AsianCall    float64 `csv:"asian_call"`
	AsianPut     float64 `csv:"asian_put"`
}

func NewResultGrid(strikes, sigmas []float64) (*ResultGrid, error) {
	if len(strikes) == 0 {
		return nil, fmt.Errorf("NewResultGrid: %w", EmptyStrikesErr)
	}

	if len(sigmas) == 0 {
		return nil, fmt.Errorf("NewResultGrid: %w", EmptySigmasErr)
	}

	cells := make([][]PriceQuote, len(strikes))
	populated := make([][]bool, len(strikes))
	for i := range cells {
		cells[i] = make([]PriceQuote, len(sigmas))
		populated[i] = make([]bool, len(sigmas))
	}

	return &ResultGrid{
		Strikes:   append([]float64(nil), strikes...),
		Sigmas:    append([]float64(nil), sigmas...),
		cells:     cells,
		populated: populated,
	}, nil
}

func (g *ResultGrid) checkBounds(strikeIdx, sigmaIdx int) error {
	if strikeIdx < 0 || strikeIdx >= len(g.Strikes) {
		return fmt.Errorf("strikeIdx=%v of %v: %w", strikeIdx, len(g.Strikes), CellOutOfRangeErr)
	}

	if sigmaIdx < 0 || sigmaIdx >= len(g.Sigmas) {
		return fmt.Errorf("sigmaIdx=%v of %v: %w", sigmaIdx, len(g.Sigmas), CellOutOfRangeErr)
	}

	return nil
}

// Set writes the quote for one grid cell. Writing outside the grid or writing
// the same cell twice is an error.
func (g *ResultGrid) Set(strikeIdx, sigmaIdx int, quote PriceQuote) error {
	if err := g.checkBounds(strikeIdx, sigmaIdx); err != nil {
		return fmt.Errorf("ResultGrid.Set: %w", err)
	}

	if g.populated[strikeIdx][sigmaIdx] {
		return fmt.Errorf("ResultGrid.Set: cell (%v, %v): %w", strikeIdx, sigmaIdx, CellAlreadySetErr)
	}

	g.cells[strikeIdx][sigmaIdx] = quote
	g.populated[strikeIdx][sigmaIdx] = true
	return nil
}

func (g *ResultGrid) At(strikeIdx, sigmaIdx int) (PriceQuote, error) {
	if err := g.checkBounds(strikeIdx, sigmaIdx); err != nil {
		return PriceQuote{}, fmt.Errorf("ResultGrid.At: %w", err)
	}

	if !g.populated[strikeIdx][sigmaIdx] {
		return PriceQuote{}, fmt.Errorf("ResultGrid.At: cell (%v, %v): %w", strikeIdx, sigmaIdx, CellNotSetErr)
	}

	return g.cells[strikeIdx][sigmaIdx], nil
}

// Complete reports whether every cell has been populated.
func (g *ResultGrid) Complete() bool {
	for i := range g.populated {
		for j := range g.populated[i] {
			if !g.populated[i][j] {
				return false
			}
		}
	}

	return true
}

// Render returns one estimate of the grid as a table with strikes as rows and
// sigmas as columns.
func (g *ResultGrid) Render(kind QuoteKind) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	header := []string{"strike \\ sigma"}
	for _, sigma := range g.Sigmas {
		header = append(header, fmt.Sprintf("%.2f", sigma))
	}
	table.SetHeader(header)

	display.WriteString(fmt.Sprintf("%s prices:\n", kind))

	for i, strike := range g.Strikes {
		row := []string{fmt.Sprintf("$%s", p.Sprintf("%.2f", strike))}
		for j := range g.Sigmas {
			if !g.populated[i][j] {
				row = append(row, "-")
				continue
			}

			row = append(row, p.Sprintf("%.4f", g.cells[i][j].Estimate(kind)))
		}

		table.Append(row)
	}

	table.Render()
	return display.String()
}

func (g *ResultGrid) String() string {
	return g.Render(EuropeanCallQuote)
}

// ToRecords flattens the grid in strike-major order for CSV export.
func (g *ResultGrid) ToRecords() []*GridRecordDTO {
	var records []*GridRecordDTO
	for i, strike := range g.Strikes {
		for j, sigma := range g.Sigmas {
			quote := g.cells[i][j]
			records = append(records, &GridRecordDTO{
				Strike:       strike,
				Sigma:        sigma,
				EuropeanCall: quote.EuropeanCall,
				EuropeanPut:  quote.EuropeanPut,
				AsianCall:    quote.AsianCall,
				AsianPut:     quote.AsianPut,
			})
		}
	}

	return records
}

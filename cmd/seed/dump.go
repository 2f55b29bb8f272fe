package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/andresuchdata/salesops-analytics/pkg/logger"
	"github.com/urfave/cli/v2"
)

type dumpPayload struct {
	ID             string                 `json:"id"`
	Seed           uint64                 `json:"seed"`
	ReferenceDate  time.Time              `json:"reference_date"`
	Days           int                    `json:"days"`
	Products       []domain.Product       `json:"products"`
	Routes         []domain.Route         `json:"routes"`
	Salesmen       []domain.Salesman      `json:"salesmen"`
	Customers      []domain.Customer      `json:"customers"`
	Transactions   []domain.Transaction   `json:"transactions"`
	DailySales     []domain.DailySales    `json:"daily_sales"`
	StockMovements []domain.StockMovement `json:"stock_movements"`
	Journeys       []domain.Journey       `json:"journeys"`
	Visits         []domain.Visit         `json:"visits"`
	Targets        []domain.Target        `json:"targets"`
	Users          []domain.User          `json:"users"`
	Holidays       []domain.Holiday       `json:"holidays"`
	Attendance     []domain.Attendance    `json:"attendance"`
	LeaveBalances  []domain.LeaveBalance  `json:"leave_balances"`
}

func newDumpPayload(ds *dataset.Dataset) dumpPayload {
	return dumpPayload{
		ID:             ds.ID(),
		Seed:           ds.Seed(),
		ReferenceDate:  ds.ReferenceDate(),
		Days:           ds.Days(),
		Products:       ds.Products(),
		Routes:         ds.Routes(),
		Salesmen:       ds.Salesmen(),
		Customers:      ds.Customers(),
		Transactions:   ds.Transactions(),
		DailySales:     ds.DailySales(),
		StockMovements: ds.StockMovements(),
		Journeys:       ds.Journeys(),
		Visits:         ds.Visits(),
		Targets:        ds.Targets(),
		Users:          ds.Users(),
		Holidays:       ds.Holidays(),
		Attendance:     ds.Attendance(),
		LeaveBalances:  ds.LeaveBalances(),
	}
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Write every generated collection as one JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output file, - for stdout",
				Value: "-",
			},
		},
		Action: runDump,
	}
}

func runDump(c *cli.Context) error {
	ds, err := buildDataset(c)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if out := c.String("out"); out != "-" && out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDumpPayload(ds)); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	logger.Log.Info().Str("out", c.String("out")).Msg("Dataset dumped")
	return nil
}

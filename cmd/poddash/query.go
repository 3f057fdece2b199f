package main

import (
	"cloud.google.com/go/civil"
	"github.com/benji822/pod-dash-app/pkg/poddash"
	"github.com/benji822/pod-dash-app/pkg/poddash/render"
	"github.com/spf13/cobra"
)

// selection holds the line/date/workcell flags shared by the query commands.
type selection struct {
	line     string
	date     string
	workcell int
}

func (s *selection) bind(cmd *cobra.Command, withWorkcell bool) {
	cmd.Flags().StringVar(&s.line, "line", "", "Line id, e.g. L1")
	cmd.Flags().StringVar(&s.date, "date", "", "Date as MM/DD/YYYY")
	_ = cmd.MarkFlagRequired("line")
	_ = cmd.MarkFlagRequired("date")
	if withWorkcell {
		cmd.Flags().IntVar(&s.workcell, "workcell", 0, "Workcell index, 0..9")
	}
}

func (s *selection) parseDate() (civil.Date, error) {
	return poddash.ParseDate(s.date)
}

func newFiltersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the lines, dates and workcells present in the data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := c.load()
			if err != nil {
				return err
			}
			f := render.FiltersOf(ds)
			return c.write(cmd, f, render.FiltersTable(f))
		},
	}
}

func newOutputCmd(c *cli) *cobra.Command {
	sel := &selection{}
	cmd := &cobra.Command{
		Use:   "output",
		Short: "Show the output rows of a workcell for one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := sel.parseDate()
			if err != nil {
				return err
			}
			ds, err := c.load()
			if err != nil {
				return err
			}
			records, err := ds.OutputSlice(sel.line, sel.workcell, date)
			if err != nil {
				return err
			}
			rows := poddash.FormatOutputRows(records)
			return c.write(cmd, rows, render.OutputTable(rows))
		},
	}
	sel.bind(cmd, true)
	return cmd
}

func newBreakdownCmd(c *cli) *cobra.Command {
	sel := &selection{}
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show downtime seconds per reason code for a workcell and day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := sel.parseDate()
			if err != nil {
				return err
			}
			ds, err := c.load()
			if err != nil {
				return err
			}
			bd, err := ds.DowntimeBreakdown(sel.line, date, sel.workcell)
			if err != nil {
				return err
			}
			return c.write(cmd, bd.Map(), render.BreakdownTable(bd))
		},
	}
	sel.bind(cmd, true)
	return cmd
}

func newHourlyCmd(c *cli) *cobra.Command {
	sel := &selection{}
	cmd := &cobra.Command{
		Use:   "hourly",
		Short: "Show hourly downtime rows for a workcell and day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := sel.parseDate()
			if err != nil {
				return err
			}
			ds, err := c.load()
			if err != nil {
				return err
			}
			records, err := ds.HourlyDowntime(sel.line, date, sel.workcell)
			if err != nil {
				return err
			}
			t := render.HourlyTable(records)
			return c.write(cmd, records, t)
		},
	}
	sel.bind(cmd, true)
	return cmd
}

func newRawCmd(c *cli) *cobra.Command {
	sel := &selection{}
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Show the unclassified downtime sheet of a line for one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := sel.parseDate()
			if err != nil {
				return err
			}
			ds, err := c.load()
			if err != nil {
				return err
			}
			raw, err := ds.RawDowntime(sel.line, date)
			if err != nil {
				return err
			}
			return c.write(cmd, raw, render.RawTable(raw))
		},
	}
	sel.bind(cmd, false)
	return cmd
}

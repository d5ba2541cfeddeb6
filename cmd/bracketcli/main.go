// bracketcli runs the bracket design engine offline: optimise a design from
// a JSON inputs file, or segment a support run, without the API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Corbel/internal/calc/segmentation"
	"Corbel/internal/capacity"
	"Corbel/internal/model"
	"Corbel/internal/optimizer"
)

var (
	inputsPath  string
	tablePath   string
	domainsPath string
	timeoutSec  float64
	showProg    bool

	runLengthMM float64
	centresMM   float64
	maxPieceMM  float64
)

var rootCmd = &cobra.Command{
	Use:   "bracketcli",
	Short: "Masonry support bracket design tools",
}

var optimiseCmd = &cobra.Command{
	Use:   "optimise",
	Short: "Find the lightest compliant bracket/angle design",
	RunE:  runOptimise,
}

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Split a support run into angle pieces with bracket positions",
	RunE:  runSegment,
}

func init() {
	optimiseCmd.Flags().StringVarP(&inputsPath, "inputs", "i", "", "Design inputs JSON file [required]")
	optimiseCmd.Flags().StringVar(&tablePath, "table", "", "Capacity table workbook (.xlsx), built-in table when omitted")
	optimiseCmd.Flags().StringVar(&domainsPath, "domains", "", "Search domain overrides (YAML)")
	optimiseCmd.Flags().Float64Var(&timeoutSec, "timeout", 0, "Search timeout in seconds, 0 = none")
	optimiseCmd.Flags().BoolVar(&showProg, "progress", false, "Print periodic search progress")
	optimiseCmd.MarkFlagRequired("inputs")

	segmentCmd.Flags().Float64Var(&runLengthMM, "run", 0, "Total run length (mm) [required]")
	segmentCmd.Flags().Float64Var(&centresMM, "centres", 0, "Bracket centres (mm) [required]")
	segmentCmd.Flags().Float64Var(&maxPieceMM, "max-piece", 0, "Optional maximum piece length (mm)")
	segmentCmd.MarkFlagRequired("run")
	segmentCmd.MarkFlagRequired("centres")

	rootCmd.AddCommand(optimiseCmd, segmentCmd)
}

func runOptimise(cmd *cobra.Command, args []string) error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	raw, err := os.ReadFile(inputsPath)
	if err != nil {
		return fmt.Errorf("read inputs: %w", err)
	}
	var inputs model.DesignInputs
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return fmt.Errorf("parse inputs: %w", err)
	}

	table := capacity.DefaultTable(log)
	if tablePath != "" {
		var warnings []string
		table, warnings, err = capacity.LoadWorkbook(tablePath, log)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}

	cfg := optimizer.Config{}
	if domainsPath != "" {
		d, err := optimizer.LoadDomains(domainsPath)
		if err != nil {
			return err
		}
		cfg.Domains = &d
	}
	if timeoutSec > 0 {
		cfg.Timeout = time.Duration(timeoutSec * float64(time.Second))
	}

	var progCh chan model.Progress
	if showProg {
		progCh = make(chan model.Progress, 1)
		cfg.Progress = progCh
		go func() {
			for p := range progCh {
				fmt.Fprintf(os.Stderr, "checked %d/%d, best %.3f kg/m, ~%.0fs left\n",
					p.Checked, p.Total, p.BestWeightKGM, p.EstimatedSecLeft)
			}
		}()
	}

	engine := optimizer.New(table, log)
	res, err := engine.Optimise(context.Background(), inputs, cfg)
	if progCh != nil {
		close(progCh)
	}
	if err != nil {
		return err
	}
	if res.Status != model.StatusSuccess {
		fmt.Printf("No valid design found (%d combinations checked).\n", res.Checked)
		return nil
	}
	printEvaluation(res.Best)
	if len(res.Alternatives) > 0 {
		fmt.Printf("\nAlternatives (%d):\n", len(res.Alternatives))
		for i, a := range res.Alternatives {
			fmt.Printf("  %d. %.3f kg/m  centres %.0f, bracket %.0f mm, angle %.0fx%.0fx%.0f\n",
				i+1, a.WeightKGM, a.Parameters.BracketCentresMM, a.Parameters.BracketThicknessMM,
				a.Parameters.VerticalLegMM, a.Parameters.HorizontalLegMM, a.Parameters.AngleThicknessMM)
		}
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return nil
}

func printEvaluation(ev *model.CandidateEvaluation) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Best design\t%.3f kg/m\n", ev.WeightKGM)
	fmt.Fprintf(w, "Bracket\t%s, %.0f mm thick, %.0f mm centres, height %.1f mm\n",
		ev.Parameters.BracketType, ev.Parameters.BracketThicknessMM,
		ev.Parameters.BracketCentresMM, ev.Geometry.BracketHeightMM)
	fmt.Fprintf(w, "Angle\t%s, %.0f x %.0f x %.0f mm\n",
		ev.Parameters.AngleOrientation, ev.Parameters.VerticalLegMM,
		ev.Parameters.HorizontalLegMM, ev.Parameters.AngleThicknessMM)
	if ev.Parameters.ChannelType != "" {
		fmt.Fprintf(w, "Fixing\t%s at %.0f mm below slab top\n",
			ev.Parameters.ChannelType, ev.Parameters.FixingPositionMM)
	} else if ev.Parameters.SteelBoltSize != "" {
		fmt.Fprintf(w, "Fixing\t%s %s\n", ev.Parameters.SteelBoltSize, ev.Parameters.SteelFixingMethod)
	}
	fmt.Fprintln(w, "Check\tUtilization\tResult")
	for _, c := range ev.Checks {
		status := "PASS"
		if !c.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s\t%.1f%%\t%s\n", c.Name, c.UtilizationPct, status)
	}
	w.Flush()
}

func runSegment(cmd *cobra.Command, args []string) error {
	res, err := segmentation.Optimise(segmentation.Input{
		RunLengthMM:      runLengthMM,
		BracketCentresMM: centresMM,
		MaxPieceLengthMM: maxPieceMM,
	})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Pieces\t%d\tBrackets\t%d\tDistinct lengths\t%d\n",
		len(res.Pieces), res.TotalBrackets, res.DistinctLengths)
	for i, p := range res.Pieces {
		kind := "custom"
		if p.Standard {
			kind = "standard"
		}
		fmt.Fprintf(w, "piece %d\t%.0f mm\t%s\t%d brackets\n", i+1, p.LengthMM, kind, len(p.BracketOffsetsMM))
	}
	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

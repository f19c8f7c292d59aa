package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/derailed/tview"
	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/csvtable"
	"github.com/domonda/go-datatable/htmltable"
	"github.com/domonda/go-datatable/internal/tablefile"
	"github.com/domonda/go-datatable/tviewtable"
)

const (
	appName    = "datatable"
	appVersion = "0.1.0"
)

type flags struct {
	format    string
	sort      []string
	selectIDs []string
	selection string
	out       string
	encoding  string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	f := new(flags)
	rootCmd := &cobra.Command{
		Use:   appName + " <table.yaml>",
		Short: "Render a sortable, selectable data table",
		Long: `datatable loads a table definition with rows from a YAML file,
applies the passed sort toggles and row selections,
and writes the table as text, CSV or HTML or shows it in the terminal.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}
	rootCmd.Flags().StringVarP(&f.format, "format", "f", "text", "Output format (text, csv, html, tui)")
	rootCmd.Flags().StringArrayVarP(&f.sort, "sort", "s", nil, "Toggle the sort of a column, repeat to cycle the direction")
	rootCmd.Flags().StringArrayVar(&f.selectIDs, "select", nil, "Toggle the selection of a row, can be repeated")
	rootCmd.Flags().StringVar(&f.selection, "selection", "", "Selection mode overriding the file (none, single, multiple)")
	rootCmd.Flags().StringVarP(&f.out, "out", "o", "", "Output file instead of stdout")
	rootCmd.Flags().StringVar(&f.encoding, "encoding", "UTF-8", "Character encoding of CSV output")
	rootCmd.Flags().StringVarP(&f.logLevel, "logLevel", "l", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	})
	return rootCmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func run(cmd *cobra.Command, f *flags, path string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return err
	}

	file, err := tablefile.Load(fs.File(path))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("selection") {
		file.Selection, err = datatable.ParseSelectionMode(f.selection)
		if err != nil {
			return err
		}
	}

	table, err := file.Table()
	if err != nil {
		return err
	}
	table = table.
		WithLogger(logger).
		WithOnSelectionChanged(func(ids []string) {
			logger.Info("selection changed", slog.Any("selection", ids))
		})

	for _, columnID := range f.sort {
		column := datatable.ColumnByID(table.ColumnDefs(), columnID)
		switch {
		case column == nil:
			return fmt.Errorf("unknown sort column %q", columnID)
		case !column.Sortable:
			return fmt.Errorf("column %q is not sortable", columnID)
		}
		table.ToggleSort(columnID)
	}
	for _, rowID := range f.selectIDs {
		table.ToggleRow(rowID)
	}

	ctx := cmd.Context()
	switch f.format {
	case "text":
		writer := csvtable.NewWriter[tablefile.Record]().
			WithHeaderRow(true).
			WithDelimiter('|').
			WithNewLine("\n").
			WithPadding(csvtable.AlignLeft).
			WithSelectionColumn("", "*")
		if f.out != "" {
			return writer.WriteFile(ctx, fs.File(f.out), table)
		}
		return writer.WriteTable(ctx, cmd.OutOrStdout(), table)

	case "csv":
		writer, err := csvtable.NewWriter[tablefile.Record]().
			WithHeaderRow(true).
			WithSelectionColumn("Selected", "x").
			WithEncoding(f.encoding)
		if err != nil {
			return err
		}
		if f.out != "" {
			return writer.WriteFile(ctx, fs.File(f.out), table)
		}
		return writer.WriteTable(ctx, cmd.OutOrStdout(), table)

	case "html":
		writer := htmltable.NewWriter[tablefile.Record]()
		if f.out != "" {
			return writer.WriteFile(ctx, fs.File(f.out), table)
		}
		return writer.WriteTable(ctx, cmd.OutOrStdout(), table)

	case "tui":
		if f.out != "" {
			return fmt.Errorf("format tui can't be written to %s", f.out)
		}
		app := tview.NewApplication()
		app.SetRoot(tviewtable.NewTable(table), true)
		go func() {
			<-ctx.Done()
			app.Stop()
		}()
		err = app.Run()
		if err != nil {
			return err
		}
		logger.Info("table closed", slog.Any("selection", table.SelectedIDs()))
		return nil
	}
	return fmt.Errorf("unsupported format %q", f.format)
}

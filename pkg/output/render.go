package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/constants"
	"github.com/iwvelando/lng-economics/pkg/market"
	"github.com/iwvelando/lng-economics/pkg/validation"
)

// Options selects the format and destination of rendered output.
type Options struct {
	Format      string
	File        string // written instead of the default writer when set; required for xlsx
	RunID       string
	GeneratedAt time.Time
}

func (o Options) format() string {
	if o.Format == "" {
		return constants.OutputFormatPretty
	}
	return o.Format
}

// destination returns the writer output goes to and a function that must be
// called once rendering is done.
func (o Options) destination(w io.Writer) (io.Writer, func() error, error) {
	if err := validation.ValidateOutputFormat(o.format()); err != nil {
		return nil, nil, err
	}
	if o.File == "" {
		if o.format() == constants.OutputFormatXLSX {
			return nil, nil, fmt.Errorf("%s output requires an output file", constants.OutputFormatXLSX)
		}
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(o.File)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

// Results renders scenario results in the selected format.
func Results(w io.Writer, opts Options, results []scenario.Result) (err error) {
	dst, done, err := opts.destination(w)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := done(); err == nil {
			err = closeErr
		}
	}()

	switch opts.format() {
	case constants.OutputFormatCSV:
		return CsvFormat(dst, results)
	case constants.OutputFormatJSON:
		return JSONFormat(dst, opts.RunID, opts.GeneratedAt, results)
	case constants.OutputFormatXLSX:
		return XLSXFormat(dst, results)
	default:
		return PrettyFormat(dst, results)
	}
}

// Dashboard renders market analytics in the selected format.
func Dashboard(w io.Writer, opts Options, d *market.Dashboard, period string) (err error) {
	dst, done, err := opts.destination(w)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := done(); err == nil {
			err = closeErr
		}
	}()

	switch opts.format() {
	case constants.OutputFormatCSV:
		return DashboardCsvFormat(dst, d)
	case constants.OutputFormatJSON:
		return DashboardJSONFormat(dst, opts.RunID, opts.GeneratedAt, d, period)
	case constants.OutputFormatXLSX:
		return DashboardXLSXFormat(dst, d)
	default:
		return DashboardPrettyFormat(dst, d, period)
	}
}

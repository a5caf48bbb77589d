// Package console renders the store's feature views for the terminal.
// Every view fetches its collection when entered and re-fetches it after
// a mutation, so the printed table always reflects the server state.
package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/storehub/backend/internal/client"
)

// Console holds the API client and the output stream the views print to
type Console struct {
	api *client.Client
	out io.Writer
}

// New creates a Console writing to out
func New(api *client.Client, out io.Writer) *Console {
	return &Console{api: api, out: out}
}

// table prints a tab-aligned table with a header row
func (c *Console) table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

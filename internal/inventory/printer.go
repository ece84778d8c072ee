// Package inventory renders read-only text reports about a schema repository:
// node type definitions, repository descriptors, and namespace mappings.
//
// Every printer opens what it needs from the repository for the duration of
// one Print call and releases it before returning. Store faults never escape
// a printer; they are written into the report as a failure notice followed by
// the error detail. Print only returns an error when the writer itself fails.
package inventory

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// Printer renders one text report from a repository.
type Printer interface {
	// Name is the short identifier used on the command line.
	Name() string

	// Title is the human-readable report title.
	Title() string

	// Print writes the report to w.
	Print(ctx context.Context, w io.Writer, repo types.Repository) error
}

// Printers returns the available reports in display order.
func Printers() []Printer {
	return []Printer{
		NodeTypePrinter{},
		DescriptorsPrinter{},
		NamespacesPrinter{},
	}
}

// Lookup returns the printer with the given name.
func Lookup(name string) (Printer, bool) {
	for _, p := range Printers() {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// reportWriter remembers the first write error so report code can write
// unconditionally and check once.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) write(p []byte) {
	if rw.err != nil {
		return
	}
	_, rw.err = rw.w.Write(p)
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

// fail writes the failure notice and the error detail. The %+v verb prints
// the stack trace when the error carries one.
func (rw *reportWriter) fail(notice string, err error) {
	logrus.WithError(err).Warn(notice)
	rw.printf("%s\n", notice)
	rw.printf("%+v\n", err)
}

// logout releases a session, logging rather than reporting a failure since
// the report is already complete by the time it runs.
func logout(session types.Session) {
	if err := session.Logout(); err != nil {
		logrus.WithError(err).Warn("session logout failed")
	}
}

// Command sysls prints the reef system catalog: every discoverable system
// with its category, state classification, and declared phase. Display
// order is collated for reading; it says nothing about execution order.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	coresys "github.com/reefgo/server/internal/core/system"
	"github.com/reefgo/server/internal/system"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func main() {
	showInternal := flag.Bool("internal", false, "include internal plumbing systems")
	flag.Parse()

	if err := run(*showInternal); err != nil {
		fmt.Fprintf(os.Stderr, "sysls: %v\n", err)
		os.Exit(1)
	}
}

func run(showInternal bool) error {
	// Factories are never invoked for a listing, so empty deps suffice.
	catalog, err := system.BuildCatalog(&system.Deps{Log: zap.NewNop()})
	if err != nil {
		return err
	}

	flags := coresys.DiscoverDefault
	if showInternal {
		flags |= coresys.DiscoverInternal
	}
	descriptors := catalog.DiscoverAll(flags)

	c := collate.New(language.English)
	c.Sort(byName(descriptors))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tKIND\tPHASE")
	for _, d := range descriptors {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, d.Category, d.Kind, d.Phase)
	}
	return w.Flush()
}

// byName adapts a descriptor slice to collate.Sort.
type byName []coresys.Descriptor

func (s byName) Len() int           { return len(s) }
func (s byName) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byName) Bytes(i int) []byte { return []byte(s[i].Name) }

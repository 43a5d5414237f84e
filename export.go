// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// Fprint writes a textual table of every node reachable through roots (or
// every node in the table if roots is empty) to w: one line per node, giving
// its id, level, and low/high successors.
func (f *Factory[T]) Fprint(w io.Writer, roots ...Edge[T]) error {
	if f.Errored() {
		fmt.Fprintf(w, "Error: %s\n", f.Error())
		return fmt.Errorf(f.Error())
	}
	if len(roots) == 1 && isSink(roots[0]) {
		if roots[0].node == oneIndex {
			fmt.Fprintln(w, "True")
		} else {
			fmt.Fprintln(w, "False")
		}
		return nil
	}
	rows := make([][4]int, 0)
	err := f.Allnodes(func(id, level, low, high int) error {
		i := sort.Search(len(rows), func(i int) bool { return rows[i][0] >= id })
		rows = append(rows, [4]int{})
		copy(rows[i+1:], rows[i:])
		rows[i] = [4]int{id, level, low, high}
		return nil
	}, roots...)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, r := range rows {
		if r[0] > 1 {
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", r[0], r[1], r[2], r[3])
		}
	}
	return tw.Flush()
}

// Print writes the same table as Fprint to standard output.
func (f *Factory[T]) Print(roots ...Edge[T]) {
	f.Fprint(os.Stdout, roots...)
}

// PrintDot writes a DOT-format rendering of the diagram reachable through
// roots (or the whole table if roots is empty) to filename, or to standard
// output if filename is "-". Edges to the False sink are never drawn, in
// keeping with the usual reduced-diagram convention.
func (f *Factory[T]) PrintDot(filename string, roots ...Edge[T]) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	w := bufio.NewWriter(out)
	if f.Errored() {
		fmt.Fprintf(w, "Error: %s\n", f.Error())
		w.Flush()
		return fmt.Errorf(f.Error())
	}
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, `1 [shape=box, label="1", style=filled, shape=box, height=0.3, width=0.3];`)
	// multlabel shows an edge's multiplicity, except for the Unit carrier
	multlabel := func(e Edge[T]) string {
		if any(e.mult) == any(Unit{}) {
			return ""
		}
		return fmt.Sprintf(`, label="%v"`, e.mult)
	}
	err = f.Allnodes(func(id, level, low, high int) error {
		if id > 1 {
			n := f.nodes[id]
			fmt.Fprintf(w, "%d %s\n", id, dotlabel(id, level))
			if low != 0 {
				fmt.Fprintf(w, "%d -> %d [style=dotted%s];\n", id, low, multlabel(n.lo))
			}
			if high != 0 {
				fmt.Fprintf(w, "%d -> %d [style=filled%s];\n", id, high, multlabel(n.hi))
			}
		}
		return nil
	}, roots...)
	if err != nil {
		w.Flush()
		return err
	}
	fmt.Fprintln(w, "}")
	return w.Flush()
}

func dotlabel(id, level int) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, level, id)
}

// Command animinfo prints the built-in animation catalog.
//
// Usage:
//
//	animinfo [flags] [animation-name ...]
//
// Without arguments it prints a summary of every animation.
//
// Examples:
//
//	animinfo
//	animinfo kitt pulse
//	animinfo -steps breathe
//	animinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-led/led/anim"
)

func main() {
	list := flag.Bool("list", false, "list available animation names")
	steps := flag.Bool("steps", false, "print every instruction of the selected animations")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: animinfo [flags] [animation-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the built-in LED animation catalog.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints a summary of all animations.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  animinfo kitt pulse\n")
		fmt.Fprintf(os.Stderr, "  animinfo -steps breathe\n")
		fmt.Fprintf(os.Stderr, "  animinfo -list\n")
	}
	flag.Parse()

	catalog := anim.Presets()

	if *list {
		printList(catalog)
		return
	}

	selected := resolve(catalog, flag.Args())
	if len(selected) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching animations\n")
		os.Exit(1)
	}

	if *steps {
		printSteps(selected)
		return
	}
	printSummary(selected)
}

func printList(catalog anim.Catalog) {
	names := make([]string, len(catalog))
	for i := range catalog {
		names[i] = catalog[i].Name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolve(catalog anim.Catalog, names []string) []anim.Animation {
	if len(names) == 0 {
		return catalog
	}

	byName := make(map[string]anim.Animation, len(catalog))
	for _, a := range catalog {
		byName[a.Name] = a
	}

	var result []anim.Animation
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		a, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown animation %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, a)
	}
	return result
}

func printSummary(animations []anim.Animation) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Animation\tStrip Steps\tStrip Cycle [ms]\tColor Steps\tColor Cycle [ms]\n")
	fmt.Fprintf(tw, "---------\t-----------\t----------------\t-----------\t----------------\n")

	for _, a := range animations {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\n",
			a.Name,
			len(a.Strip),
			cycleLabel(a.Strip),
			len(a.Color),
			cycleLabel(a.Color),
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// cycleLabel renders a sequence's total duration, marking sequences
// that park on a hold-forever instruction.
func cycleLabel(s anim.Sequence) string {
	for i := range s {
		if s[i].Duration == anim.HoldForever {
			return "hold"
		}
	}
	return fmt.Sprintf("%d", s.TotalDuration())
}

func printSteps(animations []anim.Animation) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, a := range animations {
		fmt.Fprintf(tw, "%s\t\t\t\n", a.Name)
		printSequence(tw, "strip", a.Strip)
		printSequence(tw, "color", a.Color)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSequence(tw *tabwriter.Writer, channel string, s anim.Sequence) {
	for i := range s {
		ins := &s[i]
		duration := fmt.Sprintf("%d", ins.Duration)
		if ins.Duration == anim.HoldForever {
			duration = "hold"
		}
		deltas := make([]string, len(ins.Deltas))
		for j, d := range ins.Deltas {
			deltas[j] = fmt.Sprintf("%d", d)
		}
		label := ins.Ops.String()
		if ins.Ops.Has(anim.OpRepeat) {
			label = fmt.Sprintf("%s(%d)", label, ins.Operand)
		}
		fmt.Fprintf(tw, "  %s[%d]\t%s ms\t%s\t[%s]\n", channel, i, duration, label, strings.Join(deltas, " "))
	}
}

package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/astef/bitvec"
	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	inspectOrder string
	inspectWidth int
	inspectRange string
)

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect BITS",
	Short: "Show the storage layout of a bit string",
	Long: `Inspect pushes BITS (a string of 0 and 1, '_' and spaces ignored) into a
bit vector with the chosen order and element width, selects --range from it
and prints the pointer, the head/body/tail split and the storage elements.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bits, err := parseBits(args[0])
		if err != nil {
			return err
		}
		from, to, err := parseRange(inspectRange, len(bits))
		if err != nil {
			return err
		}
		switch strings.ToLower(inspectOrder) {
		case "lsb0":
			return inspectWidthOf[order.Lsb0](cmd.OutOrStdout(), bits, from, to)
		case "msb0":
			return inspectWidthOf[order.Msb0](cmd.OutOrStdout(), bits, from, to)
		default:
			return errors.Newf("unknown order %q, want lsb0 or msb0", inspectOrder)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectOrder, "order", "lsb0", "bit order inside an element: lsb0 or msb0")
	inspectCmd.Flags().IntVar(&inspectWidth, "width", 8, "element width in bits: 8, 16, 32 or 64")
	inspectCmd.Flags().StringVar(&inspectRange, "range", "", "bits to select as FROM:TO, either side may be omitted")
}

func inspectWidthOf[O order.Order](w io.Writer, bits []bool, from, to int) error {
	switch inspectWidth {
	case 8:
		return inspect[O, uint8](w, bits, from, to)
	case 16:
		return inspect[O, uint16](w, bits, from, to)
	case 32:
		return inspect[O, uint32](w, bits, from, to)
	case 64:
		return inspect[O, uint64](w, bits, from, to)
	default:
		return errors.Newf("unsupported element width %d", inspectWidth)
	}
}

func inspect[O order.Order, T store.Element](w io.Writer, bits []bool, from, to int) error {
	v := bitvec.New[O, T](bitvec.WithLogger(logger()))
	v.Extend(slices.Values(bits))
	s, err := v.Bits().Range(from, to)
	if err != nil {
		return err
	}

	var o O
	fmt.Fprintf(w, "layout:   %v %s\n", o, store.Name[T]())
	fmt.Fprintf(w, "bits:     %s\n", s)
	fmt.Fprintf(w, "pointer:  %s\n", s.Ptr())
	d := s.Domain()
	fmt.Fprintf(w, "domain:   head=%s body=%d tail=%s\n", partial(d.Head), len(d.Body), partial(d.Tail))
	fmt.Fprint(w, "elements:")
	for _, e := range v.Elems() {
		fmt.Fprintf(w, " %0*b", int(store.Width[T]()), e)
	}
	fmt.Fprintln(w)
	return nil
}

func partial[T store.Element](p bitvec.Partial[T]) string {
	if !p.Present() {
		return "-"
	}
	return fmt.Sprintf("[%d:%d]", p.From, p.To)
}

func parseBits(s string) ([]bool, error) {
	bits := make([]bool, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		case '_', ' ':
		default:
			return nil, errors.Newf("invalid character %q at offset %d", c, i)
		}
	}
	return bits, nil
}

func parseRange(s string, n int) (from, to int, err error) {
	if s == "" {
		return 0, n, nil
	}
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.Newf("range %q is not FROM:TO", s)
	}
	from, to = 0, n
	if lo != "" {
		if from, err = strconv.Atoi(lo); err != nil {
			return 0, 0, errors.Wrapf(err, "range start %q", lo)
		}
	}
	if hi != "" {
		if to, err = strconv.Atoi(hi); err != nil {
			return 0, 0, errors.Wrapf(err, "range end %q", hi)
		}
	}
	return from, to, nil
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zlobste/ip4calc/internal/logging"
	"github.com/zlobste/ip4calc/ipv4"
)

type outputFormat string

const (
	outHuman outputFormat = "human"
	outJSON  outputFormat = "json"
	outYAML  outputFormat = "yaml"
)

var rootCmd = &cobra.Command{
	Use:   "ip4calc",
	Short: "IPv4 subnet calculator and utility tool",
	Long:  "ip4calc converts IPv4 addresses between binary, dotted-decimal and CIDR notation and computes subnet boundary addresses.",
}

var (
	format     outputFormat
	logCfg     logging.Config
	calculator *ipv4.Calculator
)

// Execute runs the root command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP((*string)(&format), "output", "o", string(outHuman), "output format: human|json|yaml")
	rootCmd.PersistentFlags().BoolVar(&logCfg.Enabled, "log", false, "write log entries")
	rootCmd.PersistentFlags().StringVar(&logCfg.File, "log-file", "", "log file path (default stderr)")
	rootCmd.PersistentFlags().IntVar(&logCfg.MaxSize, "log-max-size", 10, "log size in megabytes before rotation")
	rootCmd.PersistentFlags().IntVar(&logCfg.MaxHistory, "log-max-history", 3, "rotated log files to keep")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		var log logrus.FieldLogger
		if logCfg.Enabled {
			log = logging.New(logCfg)
		}
		calculator = ipv4.NewCalculator(log)
	}
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(tocidrCmd)
}

func render(v any) error {
	w := rootCmd.OutOrStdout()
	switch format {
	case outHuman:
		fmt.Fprintln(w, v)
	case outJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return errors.New("unknown output format")
	}
	return nil
}

func rangeOut(r ipv4.SubnetRange) map[string]any {
	return map[string]any{
		"subnet":    r.Subnet.String(),
		"min":       r.Min.String(),
		"max":       r.Max.String(),
		"broadcast": r.Broadcast.String(),
	}
}

// ---- Commands ----

var decodeCmd = &cobra.Command{
	Use:   "decode <32-bit binary string>",
	Short: "Decode a 32-character binary string to dotted-decimal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := calculator.DecodeBinary(args[0])
		if err != nil {
			return err
		}
		return render(addr)
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <dotted-decimal address>",
	Short: "Encode a dotted-decimal address as a 32-character binary string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bits, err := calculator.EncodeBinary(args[0])
		if err != nil {
			return err
		}
		return render(bits)
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range <IPv4 CIDR>",
	Short: "Compute the subnet, usable host range and broadcast of a network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := calculator.ComputeRange(args[0])
		if err != nil {
			return err
		}
		return render(rangeOut(r))
	},
}

var rangesCmd = &cobra.Command{
	Use:   "ranges <CIDR 1> <CIDR 2> ...",
	Short: "Compute subnet ranges for several networks at once",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := ipv4.RangeAll(cmd.Context(), args)
		if err != nil {
			return err
		}
		list := make([]map[string]any, len(results))
		for i, r := range results {
			list[i] = rangeOut(r)
		}
		return render(list)
	},
}

var tocidrCmd = &cobra.Command{
	Use:   "tocidr <address> <subnet mask>",
	Short: "Compose an address and a dotted-decimal mask into CIDR notation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := calculator.ToCIDR(args[0], args[1])
		if err != nil {
			return err
		}
		return render(out)
	},
}

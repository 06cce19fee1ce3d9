// Package main is the entry point for the rollcraft CLI.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rollcraft/rollcraft/pkg/check"
	"github.com/rollcraft/rollcraft/pkg/dice"
	"github.com/rollcraft/rollcraft/pkg/table"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rollcraft [expression|roll-name]",
	Short: "Dice expression roller",
	Long: `rollcraft evaluates dice expressions like "2d6+5" or "[2+3*4]^4".

Without flags the expression is rolled; --mean, --min, --max and --stddev
print the derived properties instead. With --table the argument names an
entry in a YAML roll table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoll,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Roll a d20 ability check",
	RunE:  runCheck,
}

var abilitiesCmd = &cobra.Command{
	Use:   "abilities",
	Short: "Generate six ability scores (best three of 4d6)",
	RunE:  runAbilities,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("rollcraft version {{.Version}}\n")

	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed (default derived from crypto/rand, env SEED)")
	rootCmd.PersistentFlags().Bool("adv", false, "Roll with advantage")
	rootCmd.PersistentFlags().Bool("disadv", false, "Roll with disadvantage")

	rootCmd.Flags().Bool("mean", false, "Print the expected value instead of rolling")
	rootCmd.Flags().Bool("min", false, "Print the lowest possible value instead of rolling")
	rootCmd.Flags().Bool("max", false, "Print the highest possible value instead of rolling")
	rootCmd.Flags().Bool("stddev", false, "Print the standard deviation instead of rolling")
	rootCmd.MarkFlagsMutuallyExclusive("mean", "min", "max", "stddev")
	rootCmd.Flags().String("table", "", "YAML roll table file (env ROLL_TABLE)")

	checkCmd.Flags().Int("dc", 0, "Difficulty class to beat")
	checkCmd.Flags().Int("mod", 0, "Check modifier")

	rootCmd.AddCommand(checkCmd, abilitiesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoll(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	tablePath, _ := cmd.Flags().GetString("table")
	if tablePath == "" {
		tablePath = os.Getenv("ROLL_TABLE")
	}

	var expr *dice.Expression
	if tablePath != "" {
		t, err := table.Load(tablePath)
		if err != nil {
			return err
		}
		expr, err = t.Expression(args[0])
		if err != nil {
			return err
		}
	} else {
		expr = dice.New(args[0])
	}

	var (
		v   float64
		err error
	)
	switch {
	case flagBool(cmd, "mean"):
		v, err = expr.Mean()
	case flagBool(cmd, "min"):
		v, err = expr.Min()
	case flagBool(cmd, "max"):
		v, err = expr.Max()
	case flagBool(cmd, "stddev"):
		v, err = expr.StdDev()
	default:
		src, srcErr := newSource(cmd)
		if srcErr != nil {
			return srcErr
		}
		// Flags override table defaults only when given explicitly.
		if cmd.Flags().Changed("adv") || cmd.Flags().Changed("disadv") {
			v, err = expr.RollWith(src, flagBool(cmd, "adv"), flagBool(cmd, "disadv"))
		} else {
			v, err = expr.Roll(src)
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("%g\n", v)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := newSource(cmd)
	if err != nil {
		return err
	}

	mod, _ := cmd.Flags().GetInt("mod")
	adv := flagBool(cmd, "adv")
	disadv := flagBool(cmd, "disadv")

	total, err := check.D20(src, mod, adv, disadv)
	if err != nil {
		return err
	}
	fmt.Printf("d20%+d: %d\n", mod, total)

	if cmd.Flags().Changed("dc") {
		dc, _ := cmd.Flags().GetInt("dc")
		verdict := "failure"
		if total >= dc {
			verdict = "success"
		}
		fmt.Printf("DC %d: %s (chance %.2f)\n", dc, verdict, check.SuccessChance(dc, mod, adv, disadv))
	}
	return nil
}

func runAbilities(cmd *cobra.Command, args []string) error {
	src, err := newSource(cmd)
	if err != nil {
		return err
	}

	scores, err := check.AbilityScores(src, nil)
	if err != nil {
		return err
	}
	for _, s := range scores {
		fmt.Printf("%2d (%+d)\n", s, check.Modifier(s))
	}
	return nil
}

// newSource builds the randomness source for one invocation: the --seed
// flag, then the SEED environment variable, then a crypto/rand seed.
func newSource(cmd *cobra.Command) (*rand.Rand, error) {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		if env := os.Getenv("SEED"); env != "" {
			v, err := strconv.ParseInt(env, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid SEED %q: %w", env, err)
			}
			seed = v
		}
	}
	if seed == 0 {
		s, err := dice.NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed)), nil
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

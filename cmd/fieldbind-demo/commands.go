package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldbind"
	"github.com/goliatone/go-fieldbind/pkg/bind"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/ui"
	"github.com/goliatone/go-fieldbind/pkg/ui/terminal"
)

var passes int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Edit the sample settings interactively",
	Long: `Draws every selected field of the sample settings as a prompt. Each
pass asks for every visible field once; collapsible groups and array
buttons take effect on the next pass. The final value is printed as YAML.`,
	Example: `  # One pass over every field
  fieldbind-demo run

  # Three passes over serialized fields with overlays applied
  fieldbind-demo run --passes 3 --mask serialized --overlay ./overlays`,
	RunE: runRun,
}

var describeCmd = &cobra.Command{
	Use:     "describe",
	Short:   "Print the widget plan for the sample settings",
	Example: `  fieldbind-demo describe --mask public`,
	RunE:    runDescribe,
}

func init() {
	runCmd.Flags().IntVar(&passes, "passes", 1, "Number of passes to draw")
}

func runRun(cmd *cobra.Command, args []string) error {
	if !terminal.IsTerminal(os.Stdin) {
		return errors.New("run needs an interactive terminal; try describe instead")
	}
	if passes < 1 {
		return fmt.Errorf("--passes must be at least 1, got %d", passes)
	}
	mask, host, err := setup()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tk := terminal.New(terminal.WithOutput(out), terminal.WithContext(cmd.Context()))
	settings := defaultSettings()
	if err := runPasses(tk, host, &settings, mask, passes, out); err != nil {
		return err
	}
	return writeYAML(out, settings)
}

// runPasses draws settings until passes run out or the user aborts.
func runPasses(tk *terminal.Toolkit, host model.Host, settings *Settings, mask model.FieldMask, passes int, out io.Writer) error {
	b := fieldbind.New(
		bind.WithToolkit(tk),
		bind.WithHost(host),
		bind.WithLogger(logger),
	)
	for i := 0; i < passes; i++ {
		tk.Reset()
		tk.Header(fmt.Sprintf("Pass %d/%d", i+1, passes))
		changed, err := b.BindMasked(settings, mask, func() error {
			logger.Info("settings changed", zap.Int("pass", i+1))
			return nil
		})
		if err != nil {
			return err
		}
		if tk.Aborted() {
			fmt.Fprintln(out, "aborted")
			return nil
		}
		if err := tk.Err(); err != nil {
			return err
		}
		if !changed {
			tk.Label("no changes")
		}
		tk.Space(ui.DefaultHeight)
	}
	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	mask, host, err := setup()
	if err != nil {
		return err
	}
	plan, err := fieldbind.Plan(host, &Settings{}, mask)
	if err != nil {
		return err
	}
	return writeYAML(cmd.OutOrStdout(), plan)
}

func setup() (model.FieldMask, model.Host, error) {
	mask, err := fieldbind.ParseMask(maskFlag)
	if err != nil {
		return 0, nil, fmt.Errorf("--mask: %w", err)
	}
	store, err := fieldbind.LoadOverlays(overlayFlag)
	if err != nil {
		return 0, nil, err
	}
	if !store.Empty() {
		logger.Debug("overlays loaded", zap.Strings("types", store.Types()))
	}
	return mask, fieldbind.NewHost(store), nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

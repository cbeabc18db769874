package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/mohitkumar/fotoflow/analytics"
	"github.com/mohitkumar/fotoflow/catalog"
	"github.com/mohitkumar/fotoflow/config"
	"github.com/mohitkumar/fotoflow/flow"
	"github.com/mohitkumar/fotoflow/logger"
	"github.com/mohitkumar/fotoflow/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type cfg struct {
	config.Config
	Answers []string
	JSON    bool
}

type cli struct {
	cfg cfg
}

func setupFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config-file", "", "Path to config file.")
	cmd.PersistentFlags().String("catalog", config.DEFAULT_CATALOG, "name of the catalog to run")
	cmd.PersistentFlags().String("catalog-dir", "", "directory with user catalogs, searched before the builtin ones")
	cmd.PersistentFlags().String("catalog-file", "", "catalog file registered before the run")
	cmd.PersistentFlags().String("log-level", "info", "log level")
	cmd.PersistentFlags().String("analytics-file", "", "file the analytics collector appends to")
	cmd.PersistentFlags().Duration("session-ttl", 30*time.Minute, "idle time after which a session is dropped")
	cmd.Flags().StringArray("answer", nil, "step=value to choose, or next / back")
	cmd.Flags().Bool("json", false, "print descriptors and the quote as json")
	return viper.BindPFlags(cmd.PersistentFlags())
}

func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	var err error

	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err = viper.ReadInConfig(); err != nil {
			// it's ok if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
	}

	c.cfg.CatalogName = viper.GetString("catalog")
	c.cfg.CatalogDir = viper.GetString("catalog-dir")
	c.cfg.CatalogFile = viper.GetString("catalog-file")
	c.cfg.LogLevel = viper.GetString("log-level")
	c.cfg.SessionTTL = viper.GetDuration("session-ttl")
	if fileName := viper.GetString("analytics-file"); fileName != "" {
		c.cfg.AnalyticsConfig = analytics.DataCollectorConfig{FileName: fileName, CollectorType: analytics.LOG_FILE_DATA_COLLECTOR}
	}
	if cmd.Flags().Lookup("answer") != nil {
		if c.cfg.Answers, err = cmd.Flags().GetStringArray("answer"); err != nil {
			return err
		}
		if c.cfg.JSON, err = cmd.Flags().GetBool("json"); err != nil {
			return err
		}
	}
	if err = c.cfg.Validate(); err != nil {
		return err
	}
	return logger.Init(c.cfg.LogLevel)
}

func (c *cli) catalogService() (catalog.CatalogService, error) {
	svc := catalog.NewCatalogService(catalog.NewInMemoryStorage(), c.cfg.CatalogDir)
	if c.cfg.CatalogFile == "" {
		return svc, nil
	}
	def, err := catalog.LoadFile(c.cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	if err := svc.RegisterCatalog(*def); err != nil {
		return nil, err
	}
	if c.cfg.CatalogName == config.DEFAULT_CATALOG {
		c.cfg.CatalogName = def.Name
	}
	return svc, nil
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	defer logger.Sync()
	catalogs, err := c.catalogService()
	if err != nil {
		return err
	}
	collector, err := analytics.NewDataCollector(c.cfg.AnalyticsConfig)
	if err != nil {
		return err
	}
	sessions := session.NewSessionService(catalogs, collector, c.cfg.SessionTTL)
	s, err := sessions.Create(c.cfg.CatalogName)
	if err != nil {
		return err
	}
	defer sessions.Delete(s.Id)

	out := cmd.OutOrStdout()
	desc := s.Controller.CurrentStep()
	if err := c.print(out, desc); err != nil {
		return err
	}
	for _, answer := range c.cfg.Answers {
		desc, err = replay(s.Controller, answer)
		if err != nil {
			return fmt.Errorf("answer %q: %w", answer, err)
		}
		if err := c.print(out, desc); err != nil {
			return err
		}
	}

	quote, err := s.Quote()
	if err != nil {
		return err
	}
	if c.cfg.JSON {
		return json.NewEncoder(out).Encode(quote)
	}
	fmt.Fprintln(out, "---")
	for _, bullet := range s.Summary() {
		fmt.Fprintf(out, "* %s\n", bullet)
	}
	for _, line := range quote.Lines {
		fmt.Fprintf(out, "%-9s %-70s %10s %s\n", line.Kind, line.Label, line.Amount.StringFixed(2), quote.Currency)
	}
	fmt.Fprintf(out, "%-9s %-70s %10s %s\n", "total", "", quote.Total.StringFixed(2), quote.Currency)
	return nil
}

func replay(f *flow.FlowController, answer string) (flow.StepDescriptor, error) {
	switch answer {
	case "next":
		return f.Advance()
	case "back":
		return f.Back()
	case "reset":
		return f.Reset(), nil
	}
	stepId, value, ok := strings.Cut(answer, "=")
	if !ok {
		return f.CurrentStep(), fmt.Errorf("should be step=value, next, back or reset")
	}
	return f.Choose(stepId, value)
}

func (c *cli) print(out io.Writer, desc flow.StepDescriptor) error {
	if c.cfg.JSON {
		return json.NewEncoder(out).Encode(desc)
	}
	title := desc.Title
	if desc.SubStep != nil {
		title = fmt.Sprintf("%s [%d/%d] %s", title, desc.SubStep.Index+1, desc.SubStep.Count, desc.SubStep.Prompt)
	}
	fmt.Fprintf(out, "[%s] %s\n", desc.Id, title)
	if desc.Notice != "" {
		fmt.Fprintf(out, "  > %s\n", desc.Notice)
	}
	for _, o := range desc.Options {
		mark := " "
		if o.Selected {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] %s (%s)", mark, o.Label, o.Value)
		if o.Hint != "" {
			line += " - " + o.Hint
		}
		fmt.Fprintln(out, line)
	}
	if desc.Recommendation != "" {
		fmt.Fprintf(out, "  tip: %s\n", desc.Recommendation)
	}
	return nil
}

func catalogsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "catalogs",
		Short:   "list the available catalogs",
		PreRunE: c.setupConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range catalog.List(c.cfg.CatalogDir) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func validateCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "validate catalog files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				def, err := catalog.LoadFile(path)
				if err != nil {
					return err
				}
				if err := catalog.Validate(*def); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d steps)\n", path, def.Name, len(def.Steps))
			}
			return nil
		},
	}
}

func newCommand() *cobra.Command {
	cli := &cli{}

	cmd := &cobra.Command{
		Use:     "fotoflow",
		Short:   "replay answers through a catalog and print the quote",
		PreRunE: cli.setupConfig,
		RunE:    cli.run,
	}
	if err := setupFlags(cmd); err != nil {
		log.Fatal(err)
	}
	cmd.AddCommand(catalogsCommand(cli), validateCommand(cli))
	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/zeusync/contentdb/internal/config"
	"github.com/zeusync/contentdb/internal/content"
	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/observability/log"
	"github.com/zeusync/contentdb/internal/injector"
	"github.com/zeusync/contentdb/internal/localization"
)

var errNotFound = errors.New("object not found")

type cli struct {
	configPath string
	app        *injector.App
	strings    *localization.MenuBar
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "contentctl",
		Short:         "Inspect and edit game content definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `contentctl loads the content directory into an in-memory registry.

Environment variables override the config file:
CONTENT_LOG_LEVEL   // debug, info, warn, error
CONTENT_DIR         // directory holding Items.json, Npcs.json, Maps.json ...
CONTENT_FORMAT      // json or yaml
CONTENT_LOCALE      // BCP 47 tag used to order names
CONTENT_STRINGS     // optional editor strings override file
`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.flush()
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(c.listCmd(), c.showCmd(), c.renameCmd(), c.stringsCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.app, err = injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	if err = content.Load(cmd.Context(), c.app.Store, c.app.Registry); err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	c.strings = localization.NewMenuBar()
	if cfg.StringsFile != "" {
		data, err := os.ReadFile(cfg.StringsFile)
		if err != nil {
			return err
		}
		if err = localization.LoadOverrides(data, c.app.Store.Codec(), c.strings); err != nil {
			return fmt.Errorf("load strings: %w", err)
		}
	}
	return nil
}

// flush writes buffered log entries. Terminals reject fsync, which is fine.
func (c *cli) flush() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Logger.Sync()
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) {
		return nil
	}
	return err
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "List objects of a kind ordered by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseKind(args[0])
			if err != nil {
				return err
			}
			pairs, err := content.Pairs(c.app.Registry, kind)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, p := range pairs {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, p.ID, p.Name)
			}
			return w.Flush()
		},
	}
}

func (c *cli) find(kindName, idText string) (models.Object, error) {
	kind, err := models.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, err
	}
	obj, err := content.Find(c.app.Registry, kind, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: %s %s", errNotFound, kind, id)
	}
	return obj, nil
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Print the serialized state of an object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := c.find(args[0], args[1])
			if err != nil {
				return err
			}
			data, err := models.SerializedState(obj)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func (c *cli) renameCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "rename <kind> <id> <name>",
		Short: "Rename an object and save its table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := c.find(args[0], args[1])
			if err != nil {
				return err
			}
			if err = models.MakeBackup(obj); err != nil {
				return err
			}
			defer obj.Entity().DeleteBackup()

			obj.Entity().Name = args[2]
			changed, err := models.HasChanges(obj)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "no changes")
				return nil
			}

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "dry run, reverting")
				return content.Restore(obj)
			}
			if err = c.app.Store.SaveAll(cmd.Context(), c.app.Registry); err != nil {
				if rerr := content.Restore(obj); rerr != nil {
					c.app.Logger.Error("restore after failed save", log.Error(rerr))
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renamed %s to %q\n", obj.Entity().ID, args[2])
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report without saving")
	return cmd
}

func (c *cli) stringsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strings",
		Short: "Print the menu bar strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := localization.Marshal(c.strings, c.app.Store.Codec())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

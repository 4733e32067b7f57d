// Package commands cmd/skyserve/commands/root.go
package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/toqueteos/webbrowser"
	"golang.org/x/sync/errgroup"

	"github.com/skycoin/skyserve/internal/fsmetrics"
	"github.com/skycoin/skyserve/pkg/buildinfo"
	"github.com/skycoin/skyserve/pkg/cmdutil"
	"github.com/skycoin/skyserve/pkg/fileserver"
	"github.com/skycoin/skyserve/pkg/httputil"
	"github.com/skycoin/skyserve/pkg/metricsutil"
)

const defaultTag = "skyserve"

var (
	sf          cmdutil.ServiceFlags
	logRequests bool
	enableCORS  bool
	openBrowser bool
	maxConns    int
)

func init() {
	sf.Init(rootCmd, defaultTag)

	rootCmd.Flags().BoolVarP(&logRequests, "log", "l", true, "enable request logging\033[0m")
	rootCmd.Flags().BoolVar(&enableCORS, "cors", false, "allow cross-origin requests from any origin\033[0m")
	rootCmd.Flags().BoolVar(&openBrowser, "open", false, "open the served URL in the default browser\033[0m")
	rootCmd.Flags().IntVar(&maxConns, "max-conns", 0, "maximum number of concurrent connections, 0 is unlimited\033[0m")
	var helpflag bool
	rootCmd.SetUsageTemplate(help)
	rootCmd.PersistentFlags().BoolVarP(&helpflag, "help", "h", false, "help for "+rootCmd.Use)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().MarkHidden("help") //nolint
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

var rootCmd = &cobra.Command{
	Use:   "skyserve",
	Short: "Static file server for the current directory",
	Long: `
	┌─┐┬┌─┬ ┬┌─┐┌─┐┬─┐┬  ┬┌─┐
	└─┐├┴┐└┬┘└─┐├┤ ├┬┘└┐┌┘├┤
	└─┘┴ ┴ ┴ └─┘└─┘┴└─ └┘ └─┘
	Serves the working directory over HTTP on port 8000.`,
	SilenceErrors:         true,
	SilenceUsage:          true,
	DisableSuggestions:    true,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	Version:               buildinfo.Version(),
	Run: func(_ *cobra.Command, _ []string) {
		if err := sf.Check(); err != nil {
			log.Fatal("Invalid flags: ", err)
		}
		logger := sf.Logger()

		ctx, cancel := cmdutil.SignalContext(context.Background(), logger)
		defer cancel()

		conf := fileserver.DefaultConfig()
		conf.MaxConns = maxConns

		enableMetrics := sf.MetricsAddr != ""
		var m fsmetrics.Metrics
		if enableMetrics {
			m = fsmetrics.NewVictoriaMetrics()
		} else {
			m = fsmetrics.NewEmpty()
		}

		files, err := fileserver.NewHandler(conf, m)
		cmdutil.CatchWithLog(logger, "Failed to open base directory.", err)

		api := fileserver.NewAPI(logger, files, fileserver.APIOptions{
			LogRequests:   logRequests,
			EnableMetrics: enableMetrics,
			EnableCORS:    enableCORS,
		})

		if err := printBanner(os.Stdout, conf); err != nil {
			logger.WithError(err).Warn("Failed to print banner.")
		}

		srv := fileserver.NewServer(conf, logger, api)
		lis, err := srv.Listen()
		if err != nil {
			logger.Critical().WithError(err).Fatal("Failed to bind.")
		}

		if openBrowser {
			if err := webbrowser.Open(conf.URL()); err != nil {
				logger.WithError(err).Warn("Failed to open browser.")
			}
		}

		health := healthRoute(files.Root(), conf.Addr())

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.Serve(gctx, lis)
		})
		g.Go(func() error {
			return metricsutil.ServeHTTPMetrics(gctx, logger, sf.MetricsAddr, health)
		})

		if err := g.Wait(); err != nil {
			logger.Critical().WithError(err).Fatal("Server failed.")
		}
	},
}

// printBanner writes the two startup lines, uncoloured.
func printBanner(w io.Writer, conf fileserver.Config) error {
	_, err := fmt.Fprintf(w, "Iniciando servidor frontend en %s\nPresiona Ctrl+C para detener.\n", conf.URL())
	return err
}

func healthRoute(dir, addr string) func(chi.Router) {
	startedAt := time.Now()
	return func(mux chi.Router) {
		mux.Get(httputil.HealthPath, func(w http.ResponseWriter, r *http.Request) {
			httputil.WriteJSON(w, r, http.StatusOK, httputil.HealthCheckResponse{
				BuildInfo: buildinfo.Get(),
				StartedAt: startedAt,
				Dir:       dir,
				Addr:      addr,
			})
		})
	}
}

// Execute executes root CLI command.
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:         rootCmd,
		Headings:        cc.HiBlue + cc.Bold,
		Commands:        cc.HiBlue + cc.Bold,
		CmdShortDescr:   cc.HiBlue,
		Example:         cc.HiBlue + cc.Italic,
		ExecName:        cc.HiBlue + cc.Bold,
		Flags:           cc.HiBlue + cc.Bold,
		FlagsDescr:      cc.HiBlue,
		NoExtraNewlines: true,
		NoBottomNewline: true,
	})
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("Failed to execute command: ", err)
	}
}

const help = "Usage:\r\n" +
	"  {{.UseLine}}{{if .HasAvailableSubCommands}}{{end}} {{if gt (len .Aliases) 0}}\r\n\r\n" +
	"{{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}\r\n\r\n" +
	"Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand)}}\r\n  " +
	"{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}\r\n\r\n" +
	"Flags:\r\n" +
	"{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}\r\n\r\n" +
	"Global Flags:\r\n" +
	"{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}\r\n\r\n"

package main

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/samvad-hq/samvad-http-builder/internal/app"
	"github.com/samvad-hq/samvad-http-builder/internal/config"
	"github.com/samvad-hq/samvad-http-builder/internal/logger"
	"github.com/spf13/cobra"
)

type requestFlags struct {
	charset string
	headers []string
	dryRun  bool
}

func newRootCmd(cfg *config.Config, log logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "httpbuild",
		Short: "Build URL-encoded GET and POST requests",
		Long: `httpbuild assembles a URL-encoded request from name=value arguments
and sends it. Bare names are sent as flags without a value.

Default headers are read from DEFAULT_HEADERS_FILE (YAML or JSON).`,
		SilenceUsage: true,
	}

	root.AddCommand(newMethodCmd(http.MethodGet, cfg, log))
	root.AddCommand(newMethodCmd(http.MethodPost, cfg, log))
	return root
}

func newMethodCmd(method string, cfg *config.Config, log logger.Logger) *cobra.Command {
	var flags requestFlags
	lower := strings.ToLower(method)

	cmd := &cobra.Command{
		Use:   lower + " <url> [name=value | name]...",
		Short: "Send a " + method + " request",
		Example: fmt.Sprintf(`  httpbuild %s https://example.com/search q=golang page=2
  httpbuild %s --dry-run --header "X-Api-Key: abc" https://example.com/api verbose`, lower, lower),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, method, args, flags, cfg, log)
		},
	}

	cmd.Flags().StringVar(&flags.charset, "charset", "", "charset parameters are encoded into (default from config)")
	cmd.Flags().StringArrayVar(&flags.headers, "header", nil, `extra default header "Name: value" (repeatable)`)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the built request instead of sending it")
	return cmd
}

func runRequest(cmd *cobra.Command, method string, args []string, flags requestFlags, cfg *config.Config, log logger.Logger) error {
	sender, err := app.NewSender(cfg, log, nil)
	if err != nil {
		return err
	}
	for _, h := range flags.headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("header %q must look like \"Name: value\"", h)
		}
		sender.Headers().Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	req := app.Request{Method: method, URL: args[0], Charset: flags.charset}
	for _, arg := range args[1:] {
		p, err := app.ParseParam(arg)
		if err != nil {
			return err
		}
		req.Params = append(req.Params, p)
	}

	out := cmd.OutOrStdout()
	if flags.dryRun {
		conn, err := sender.Prepare(req)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", conn.Method, conn.URL)
		keys := make([]string, 0, len(conn.Header))
		for k := range conn.Header {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %s\n", k, conn.Header[k])
		}
		if conn.Body != "" {
			fmt.Fprintf(out, "\n%s\n", conn.Body)
		}
		return nil
	}

	res, err := sender.Send(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s -> %d (%d bytes)\n", res.Method, res.URL, res.StatusCode, res.BodyBytes)
	return nil
}

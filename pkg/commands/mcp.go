package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lumiere/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		httpHost  string
		httpPort  int
		httpPath  string
		tlsCert   string
		tlsKey    string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes journal entries, search, and mutations
through the Model Context Protocol.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close(cmd.Context())

			runner := mcp.Runner{
				Journal: svc,
				Version: "dev",
				Path:    httpPath,
				TLS: mcp.TLS{
					CertFile: strings.TrimSpace(tlsCert),
					KeyFile:  strings.TrimSpace(tlsKey),
				},
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case "", string(mcp.TransportHTTP):
				if httpPort < 0 || httpPort > 65535 {
					return fmt.Errorf("invalid http-port %d", httpPort)
				}
				runner.Transport = mcp.TransportHTTP
				runner.Addr = net.JoinHostPort(httpHost, strconv.Itoa(httpPort))
				scheme := "http"
				if runner.TLS.CertFile != "" {
					scheme = "https"
				}
				runner.OnListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(),
						"MCP server listening on %s://%s%s\n", scheme, a, runner.Path)
				}
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", transport)
			}

			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&tlsCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&tlsKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}

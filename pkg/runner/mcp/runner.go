package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/lumiere/pkg/journal"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
)

// TLS is an optional certificate pair for the HTTP transport. Both files
// must be set together.
type TLS struct {
	CertFile string
	KeyFile  string
}

func (t TLS) enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// Runner exposes a journal through the Model Context Protocol.
type Runner struct {
	Journal *journal.Service
	Version string

	Transport Transport

	// HTTP transport settings; ignored for stdio.
	Addr        string
	Path        string
	TLS         TLS
	OnListening func(net.Addr)
}

// Run serves MCP over stdio until the client disconnects.
func Run(ctx context.Context, j *journal.Service) error {
	return Runner{Journal: j, Transport: TransportStdio}.Do(ctx)
}

// RunHTTP serves MCP over HTTP at the provided address.
func RunHTTP(ctx context.Context, j *journal.Service, addr string) error {
	return Runner{Journal: j, Transport: TransportHTTP, Addr: addr}.Do(ctx)
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Journal == nil {
		return errors.New("can not serve mcp, no journal")
	}

	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		"lumiere MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read, search, and write personal journal entries via MCP."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Journal)
	registerResources(srv, svc)
	registerTools(srv, svc)

	switch r.Transport {
	case TransportStdio:
		return server.ServeStdio(srv)
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.TLS.CertFile == "") != (r.TLS.KeyFile == "") {
		return errors.New("both http tls cert and key must be provided")
	}

	mux := http.NewServeMux()
	mux.Handle(r.endpointPath(), server.NewStreamableHTTPServer(srv))

	addr := r.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if r.OnListening != nil {
		r.OnListening(ln.Addr())
	}

	httpSrv := &http.Server{Handler: mux}
	if ctx != nil {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(shutdownCtx)
		}()
	}

	if r.TLS.enabled() {
		err = httpSrv.ServeTLS(ln, r.TLS.CertFile, r.TLS.KeyFile)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (r Runner) endpointPath() string {
	path := strings.TrimSpace(r.Path)
	if path == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

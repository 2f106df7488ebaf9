// Package main is the Tadoru CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/tadoru/internal/artifact"
	"github.com/hyperjump/tadoru/internal/cli"
	"github.com/hyperjump/tadoru/internal/config"
	"github.com/hyperjump/tadoru/internal/metrics"
	"github.com/hyperjump/tadoru/internal/server"
	"github.com/hyperjump/tadoru/internal/session"
	"github.com/hyperjump/tadoru/internal/tokenizer"
	"github.com/hyperjump/tadoru/internal/tree"
	"github.com/hyperjump/tadoru/internal/watcher"
	"github.com/hyperjump/tadoru/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/tadoru/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "tadoru server" from the project dir uses the project's config (including debug).
// Returns the config and the path that was actually loaded (for watching, etc.).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "expand":
		runExpand()
	case "pop":
		runPop()
	case "delete":
		runDelete()
	case "nodes":
		runNodes()
	case "documents":
		runDocuments()
	case "status":
		runStatus()
	case "tokens":
		runTokens()
	case "replay":
		runReplay()
	case "version", "--version", "-v":
		fmt.Printf("tadoru version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// buildEncoder resolves the token encoder from config. When offline is set,
// or BPE data for the model cannot be resolved, the word-based encoder keeps
// the session usable with approximate counts.
func buildEncoder(cfg *config.Config, logger *zap.Logger) tokenizer.Encoder {
	var enc tokenizer.Encoder
	if cfg.Tokenizer.Offline {
		enc = tokenizer.WordEncoder{}
	} else {
		bpe, err := tokenizer.ForModel(cfg.Tokenizer.Model)
		if err != nil {
			if logger != nil {
				logger.Warn("tokenizer unavailable, falling back to word encoder",
					zap.String("model", cfg.Tokenizer.Model),
					zap.Error(err))
			}
			enc = tokenizer.WordEncoder{}
		} else {
			enc = bpe
		}
	}
	if cfg.Tokenizer.CacheOrDefault() {
		enc = tokenizer.NewCachedEncoder(enc, cfg.Tokenizer.CacheSize)
	}
	return enc
}

func newSession(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*session.Session, error) {
	root := tree.NewRoot(artifact.Query(cfg.Session.RootQuery))
	tr, err := tree.New(root,
		tree.WithModel(cfg.Tokenizer.Model),
		tree.WithEncoder(buildEncoder(cfg, logger)),
		tree.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tree: %w", err)
	}
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithBuilder(artifact.NewBuilder(cfg.Content.PageContentKeys, cfg.Content.MaxChunkSize)),
	}
	if m != nil {
		opts = append(opts, session.WithMetrics(m))
	}
	return session.New(tr, opts...), nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (expansions, pops, config reloads)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	m := metrics.NewMetrics()
	sess, err := newSession(cfg, logger, m)
	if err != nil {
		logger.Fatal("Failed to initialize session", zap.Error(err))
	}

	watchOpts := []watcher.WatcherOption{}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	watchSvc, err := watcher.NewWatcher(resolvedConfigPath, func(path string) {
		reloaded, loadErr := config.Load(path)
		if loadErr != nil {
			logger.Warn("config reload failed", zap.String("path", path), zap.Error(loadErr))
			return
		}
		if reloaded.Tokenizer.Model != cfg.Tokenizer.Model {
			// The encoder is resolved once at tree construction.
			logger.Warn("tokenizer model changed; restart to apply",
				zap.String("current", cfg.Tokenizer.Model),
				zap.String("configured", reloaded.Tokenizer.Model))
		}
		sess.SetContentRules(reloaded.Content.PageContentKeys, reloaded.Content.MaxChunkSize)
	}, watchOpts...)
	if err != nil {
		logger.Fatal("Failed to create config watcher", zap.Error(err))
	}
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := watchSvc.Start(watchCtx); err != nil {
		logger.Warn("config watcher not started", zap.Error(err))
	}

	srv := server.NewServer(sess, cfg, logger, m)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	watchSvc.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildItemText joins all positional args with spaces so multi-word text
// works the same with or without shell quoting (e.g. "how rivers form" vs how rivers form).
func buildItemText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// expandArgsReorder moves any flags (and their values) that appear after the text
// to the front of the slice so that flag.Parse() sees them. Go's flag package
// stops at the first non-flag argument, so "tadoru expand \"text\" -parent abc"
// would otherwise leave -parent unparsed.
func expandArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func parseOutputFormat(s string) (cli.OutputFormat, error) {
	switch s {
	case "json":
		return cli.OutputJSON, nil
	case "text":
		return cli.OutputText, nil
	default:
		return cli.OutputText, fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

func printExpandUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: tadoru expand [flags] <text>\n\n")
	fmt.Fprintf(fs.Output(), "Text is all remaining arguments joined by spaces. Multi-word text works with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
By default the text becomes a query node under the root.
  • Use --parent to attach under a specific node.
  • Use --doc to add a document instead; the text becomes its content and
    --title/--type/--source fill its metadata. Document batches jump to the
    front of the leaf queue; query-only batches wait at the back.

Examples:
  tadoru expand how do rivers form
  tadoru expand "how do rivers form"                        # same as above
  tadoru expand --parent 8f2c1d summarize the first answer
  tadoru expand --doc --title "Rivers" --type wiki A river is a natural stream
`)
}

func runExpand() {
	expandArgs := expandArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("expand", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	parentID := fs.String("parent", "", "parent node id (empty = root)")
	isDoc := fs.Bool("doc", false, "add a document instead of a query")
	title := fs.String("title", "", "document title (with --doc)")
	docType := fs.String("type", "", "document type: web_page, essay, or wiki (with --doc)")
	source := fs.String("source", "", "document source URL (with --doc)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	fs.Usage = func() { printExpandUsage(fs) }
	_ = fs.Parse(expandArgs)

	if fs.NArg() < 1 {
		printExpandUsage(fs)
		os.Exit(1)
	}
	text := buildItemText(fs.Args())
	if text == "" {
		printExpandUsage(fs)
		os.Exit(1)
	}

	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var item session.ExpandItem
	if *isDoc {
		item = session.ExpandItem{
			Type: session.ItemDocument,
			Metadata: artifact.Metadata{
				Title:  *title,
				Type:   artifact.DocType(*docType),
				Source: *source,
			},
			PageContent: text,
		}
	} else {
		item = session.ExpandItem{Type: session.ItemQuery, Text: text}
	}

	nodes, err := expandViaHTTP(*serverURL, *parentID, []session.ExpandItem{item})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Expand failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteNodes(os.Stdout, nodes, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runPop() {
	fs := flag.NewFlagSet("pop", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	end := fs.String("end", "front", "queue end to pop: front or back")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	node, err := popLeafViaHTTP(*serverURL, *end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pop failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteNodes(os.Stdout, []session.NodeView{*node}, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runDelete() {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: tadoru delete [flags] <node-id>")
		os.Exit(1)
	}
	nodeID := fs.Arg(0)

	if err := deleteNodeViaHTTP(*serverURL, nodeID); err != nil {
		fmt.Fprintf(os.Stderr, "Deletion failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Node deleted: %s\n", nodeID)
}

func runNodes() {
	fs := flag.NewFlagSet("nodes", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	nodes, err := nodesViaHTTP(*serverURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listing nodes failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteNodes(os.Stdout, nodes, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runDocuments() {
	fs := flag.NewFlagSet("documents", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	docs, err := documentsViaHTTP(*serverURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listing documents failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteDocuments(os.Stdout, docs, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// statusConfigResponse holds configuration info returned by status.
type statusConfigResponse struct {
	EmbeddingModel   string   `json:"embedding_model"`
	PageContentKeys  []string `json:"page_content_keys,omitempty"`
	MaxChunkSize     int      `json:"max_chunk_size,omitempty"`
	TokenizerOffline bool     `json:"tokenizer_offline,omitempty"`
}

// statusResponse is the shape of the GET /api/v1/status response.
type statusResponse struct {
	RootID         string                `json:"root_id"`
	Tokens         int                   `json:"tokens"`
	DocumentNodes  int                   `json:"document_nodes"`
	TotalNodes     int                   `json:"total_nodes"`
	LiveDocuments  int                   `json:"live_documents"`
	LeafQueueDepth int                   `json:"leaf_queue_depth"`
	UptimeSeconds  *int64                `json:"uptime_seconds,omitempty"`
	Config         *statusConfigResponse `json:"config,omitempty"`
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	status, err := statusViaHTTP(*serverURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("root_id:            %s\n", status.RootID)
		fmt.Printf("tokens:             %d   # tokens consumed by all added document content\n", status.Tokens)
		fmt.Printf("document_nodes:     %d   # document nodes ever added\n", status.DocumentNodes)
		fmt.Printf("total_nodes:        %d   # nodes in the tree, root included\n", status.TotalNodes)
		fmt.Printf("live_documents:     %d   # documents not soft-deleted\n", status.LiveDocuments)
		fmt.Printf("leaf_queue_depth:   %d   # nodes awaiting expansion\n", status.LeafQueueDepth)
		if status.UptimeSeconds != nil {
			fmt.Printf("uptime_seconds:     %d\n", *status.UptimeSeconds)
		}
		if status.Config != nil {
			fmt.Println()
			fmt.Println("# configuration")
			fmt.Printf("embedding_model:    %s\n", status.Config.EmbeddingModel)
			if len(status.Config.PageContentKeys) > 0 {
				fmt.Printf("page_content_keys:  %s\n", strings.Join(status.Config.PageContentKeys, ", "))
			}
			if status.Config.MaxChunkSize > 0 {
				fmt.Printf("max_chunk_size:     %d\n", status.Config.MaxChunkSize)
			}
			fmt.Printf("tokenizer_offline:  %t\n", status.Config.TokenizerOffline)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func runTokens() {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	status, err := statusViaHTTP(*serverURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(status.Tokens)
}

func runReplay() {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: tadoru replay [flags] <script.json>")
		os.Exit(1)
	}
	scriptPath := fs.Arg(0)

	format, err := parseOutputFormat(*outputFormat)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sess, err := newSession(cfg, logger, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize session: %v\n", err)
		os.Exit(1)
	}
	script, err := session.LoadScript(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load script: %v\n", err)
		os.Exit(1)
	}
	result, err := sess.Replay(script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Replay failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteReplayResult(os.Stdout, result, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func expandViaHTTP(serverURL, parentID string, items []session.ExpandItem) ([]session.NodeView, error) {
	body, err := json.Marshal(map[string]interface{}{"parent_id": parentID, "items": items})
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/nodes", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var out struct {
		Nodes []session.NodeView `json:"nodes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Nodes, nil
}

func popLeafViaHTTP(serverURL, end string) (*session.NodeView, error) {
	resp, err := http.Post(serverURL+"/api/v1/leaves/pop?end="+url.QueryEscape(end), "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var view session.NodeView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &view, nil
}

func deleteNodeViaHTTP(serverURL, nodeID string) error {
	req, err := http.NewRequest(http.MethodDelete, serverURL+"/api/v1/nodes/"+url.PathEscape(nodeID), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

func nodesViaHTTP(serverURL string) ([]session.NodeView, error) {
	resp, err := http.Get(serverURL + "/api/v1/nodes")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var out struct {
		Nodes []session.NodeView `json:"nodes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Nodes, nil
}

func documentsViaHTTP(serverURL string) ([]session.DocumentView, error) {
	resp, err := http.Get(serverURL + "/api/v1/documents")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var out struct {
		Documents []session.DocumentView `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Documents, nil
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	resp, err := http.Get(serverURL + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var s statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

func printUsage() {
	fmt.Println(`tadoru - Guided document-tree exploration session

Usage:
  tadoru server [flags]                Start the HTTP server
  tadoru expand [flags] <text>         Add a query or document under a node
  tadoru pop [flags]                   Pop the next leaf from the work queue
  tadoru delete [flags] <node-id>      Soft-delete a node
  tadoru nodes [flags]                 List every node in the tree
  tadoru documents [flags]             List live documents
  tadoru status [flags]                Show session accounting
  tadoru tokens [flags]                Print the token total
  tadoru replay [flags] <script.json>  Run a recorded expansion script locally
  tadoru version                       Show version
  tadoru help                          Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/tadoru/config.yaml)
  --debug            Enable debug logging (expansions, pops, config reloads)

Expand Flags:
  --server string    Server URL (default: http://localhost:8080)
  --parent string    Parent node id (default: the root)
  --doc              Add a document instead of a query
  --title string     Document title (with --doc)
  --type string      Document type: web_page, essay, or wiki (with --doc)
  --source string    Document source URL (with --doc)
  --output string    Output format: text or json (default: text)

Pop Flags:
  --server string    Server URL (default: http://localhost:8080)
  --end string       Queue end to pop: front or back (default: front)
  --output string    Output format: text or json (default: text)

Replay Flags:
  --config string    Config file path
  --output string    Output format: text or json (default: text)

Examples:
  tadoru server
  tadoru expand how do rivers form
  tadoru expand --doc --title "Rivers" --type wiki A river is a natural stream
  tadoru expand --parent 8f2c1d narrower follow-up question
  tadoru pop --end back
  tadoru documents --output json
  tadoru status
  tadoru replay session.json
  tadoru tokens`)
}

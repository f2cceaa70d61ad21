// Command centaurd starts The Last Centaur game server: a REST API, a
// websocket broadcast hub, and an in-process MCP tool surface, all
// fronting a shared game/service.GameService.
//
// Flags control host/port, the sessions directory, debug logging,
// version output, and an optional ngrok tunnel for external access
// during development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/lastcentaur/engine/api"
	"github.com/lastcentaur/engine/game/leaderboard"
	"github.com/lastcentaur/engine/game/service"
	"github.com/lastcentaur/engine/game/session"
	mcptransport "github.com/lastcentaur/engine/transport/mcp"
	"github.com/lastcentaur/engine/transport/websocket"
)

const (
	Version = "1.0.0"
	AppName = "The Last Centaur"
)

var (
	port         = flag.Int("port", 8080, "HTTP server port")
	host         = flag.String("host", "localhost", "HTTP server host")
	sessionsDir  = flag.String("sessions-dir", getSessionsDirDefault(), "Directory for persisted session snapshots")
	debug        = flag.Bool("debug", false, "Enable debug logging")
	version      = flag.Bool("version", false, "Show version information")
	mcpStdio     = flag.Bool("mcp-stdio", false, "Also serve the MCP tool surface over stdio")
	ngrokEnabled = flag.Bool("ngrok", false, "Enable ngrok tunnel")
	ngrokAuth    = flag.String("ngrok-auth", "", "Ngrok auth token (or use NGROK_AUTHTOKEN env var)")
	ngrokDomain  = flag.String("ngrok-domain", "", "Custom ngrok domain (optional)")
)

func getSessionsDirDefault() string {
	if dir := os.Getenv("SESSIONS_DIR"); dir != "" {
		return dir
	}
	return "sessions"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "%s v%s\n\n", AppName, Version)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: error loading .env file: %v", err)
		}
	} else {
		log.Println("loaded environment variables from .env file")
	}

	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", AppName, Version)
		os.Exit(0)
	}

	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	gameService, sessionManager, err := initializeServices()
	if err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}

	runHTTPServer(gameService, sessionManager)
}

func initializeServices() (service.GameService, *session.Manager, error) {
	board := leaderboard.NewBoard()

	persistence, err := session.NewFilePersistence(*sessionsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("creating session persistence: %w", err)
	}

	sessionManager := session.NewManagerWithStore(board, persistence)
	if err := sessionManager.LoadAllFromStore(); err != nil {
		log.Printf("warning: failed to load persisted sessions: %v", err)
	}

	gameService := service.NewGameService(sessionManager)

	go periodicSaveRoutine(sessionManager)

	return gameService, sessionManager, nil
}

// periodicSaveRoutine flushes every live instance to the backing store on
// a fixed interval, backstopping the per-command save-on-request path for
// instances that never issue a save/quit command.
func periodicSaveRoutine(manager *session.Manager) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if err := manager.SaveAll(); err != nil {
			log.Printf("periodic save: %v", err)
		}
	}
}

func runHTTPServer(gameService service.GameService, sessionManager *session.Manager) {
	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	mainMux := http.NewServeMux()
	mainMux.Handle("/", apiServer)

	if *mcpStdio {
		go func() {
			mcpServer := mcptransport.NewServer(gameService)
			log.Println("MCP stdio server ready")
			if err := server.ServeStdio(mcpServer.MCPServer()); err != nil {
				log.Printf("MCP stdio server error: %v", err)
			}
		}()
	}

	addr := fmt.Sprintf("%s:%d", *host, *port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainMux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?instance_id=<instance_id>", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	ngrokShouldRun := *ngrokEnabled
	if !ngrokShouldRun {
		if envEnabled := os.Getenv("NGROK_ENABLED"); envEnabled == "true" || envEnabled == "1" {
			ngrokShouldRun = true
		}
	}

	if ngrokShouldRun {
		wg.Add(1)
		go runNgrokTunnel(ctx, &wg, mainMux)
	}

	sig := <-stop
	log.Printf("received signal: %v, shutting down", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	if err := sessionManager.SaveAll(); err != nil {
		log.Printf("final save error: %v", err)
	}

	wg.Wait()
	log.Println("server stopped")
}

func runNgrokTunnel(ctx context.Context, wg *sync.WaitGroup, handler http.Handler) {
	defer wg.Done()

	authToken := *ngrokAuth
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTHTOKEN")
		if authToken == "" {
			authToken = os.Getenv("NGROK_AUTH_TOKEN")
		}
	}
	if authToken == "" {
		log.Println("warning: ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN)")
		return
	}

	log.Println("starting ngrok tunnel...")

	domain := *ngrokDomain
	if domain == "" {
		domain = os.Getenv("NGROK_DOMAIN")
	}

	var tunnel ngrokConfig.Tunnel
	if domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
		log.Printf("using custom ngrok domain: %s", domain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		log.Printf("failed to start ngrok tunnel: %v", err)
		return
	}
	defer func() {
		if err := tun.Close(); err != nil {
			log.Printf("failed to close ngrok tunnel: %v", err)
		}
	}()

	log.Printf("ngrok tunnel established: %s", tun.URL())
	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Printf("ngrok server error: %v", err)
	}
	log.Println("ngrok tunnel closed")
}

package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seeksim/seeksim/scheduler"
)

var indexTemplate *template.Template

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development
		return true
	},
}

// Client message types
type ClientMessage struct {
	Type      string                    `json:"type"`
	Algorithm string                    `json:"algorithm,omitempty"`
	Config    *scheduler.RunConfig      `json:"config,omitempty"`
	Workload  *scheduler.WorkloadConfig `json:"workload,omitempty"`
}

// Server message types
type ServerMessage struct {
	Type       string                     `json:"type"`
	Config     *scheduler.RunConfig       `json:"config,omitempty"`
	Result     *scheduler.PolicyResult    `json:"result,omitempty"`
	Comparison scheduler.ComparisonResult `json:"comparison,omitempty"`
	Error      string                     `json:"error,omitempty"`
}

// connState holds the per-connection scenario being scheduled
type connState struct {
	config scheduler.RunConfig
	mu     sync.Mutex
}

func newConnState() *connState {
	return &connState{config: scheduler.DefaultConfig()}
}

// updateConfig replaces the scenario after boundary validation
func (s *connState) updateConfig(config scheduler.RunConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = config
	return nil
}

// getConfig returns the current scenario
func (s *connState) getConfig() scheduler.RunConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// reset restores the default scenario
func (s *connState) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = scheduler.DefaultConfig()
}

// safeConn wraps a WebSocket connection with a mutex to prevent concurrent writes
type safeConn struct {
	*websocket.Conn
	writeMu sync.Mutex
}

func (sc *safeConn) WriteJSON(v interface{}) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.Conn.WriteJSON(v)
}

func sendError(conn *safeConn, err error) {
	msg := ServerMessage{Type: "error", Error: err.Error()}
	if werr := conn.WriteJSON(msg); werr != nil {
		log.Printf("Error sending error message: %v", werr)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return
	}
	defer conn.Close()

	// Wrap connection with mutex for safe concurrent writes
	safeConn := &safeConn{Conn: conn}

	log.Println("Client connected")

	state := newConnState()

	// Send initial status with the default scenario
	cfg := state.getConfig()
	statusMsg := ServerMessage{
		Type:   "status",
		Config: &cfg,
	}
	if err := safeConn.WriteJSON(statusMsg); err != nil {
		log.Printf("Error sending status: %v", err)
		return
	}

	// Handle messages from client
	for {
		var msg ClientMessage
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			break
		}

		log.Printf("Received command: %s", msg.Type)

		switch msg.Type {
		case "run":
			policy, err := scheduler.ParsePolicy(msg.Algorithm)
			if err != nil {
				sendError(safeConn, err)
				continue
			}
			cfg := state.getConfig()
			comparison := scheduler.CompareAll(cfg.Requests, cfg.Head, cfg.DiskSize)
			result := comparison[policy.String()]
			updatePrometheusMetrics(cfg, comparison)
			resultMsg := ServerMessage{
				Type:   "result",
				Config: &cfg,
				Result: &result,
			}
			if err := safeConn.WriteJSON(resultMsg); err != nil {
				log.Printf("Error sending result: %v", err)
				return
			}

		case "compare":
			cfg := state.getConfig()
			comparison := scheduler.CompareAll(cfg.Requests, cfg.Head, cfg.DiskSize)
			updatePrometheusMetrics(cfg, comparison)
			compareMsg := ServerMessage{
				Type:       "comparison",
				Config:     &cfg,
				Comparison: comparison,
			}
			if err := safeConn.WriteJSON(compareMsg); err != nil {
				log.Printf("Error sending comparison: %v", err)
				return
			}

		case "generate":
			if msg.Workload == nil {
				sendError(safeConn, fmt.Errorf("generate requires a workload"))
				continue
			}
			requests, err := scheduler.GenerateRequests(*msg.Workload)
			if err != nil {
				sendError(safeConn, err)
				continue
			}
			cfg := state.getConfig()
			cfg.Requests = requests
			if msg.Workload.DiskSize > 0 {
				cfg.DiskSize = msg.Workload.DiskSize
			}
			if err := state.updateConfig(cfg); err != nil {
				sendError(safeConn, err)
				continue
			}
			log.Printf("Generated workload: %v", requests)
			statusMsg := ServerMessage{Type: "status", Config: &cfg}
			safeConn.WriteJSON(statusMsg)

		case "config_update":
			if msg.Config != nil {
				if err := state.updateConfig(*msg.Config); err != nil {
					log.Printf("Error updating config: %v", err)
					sendError(safeConn, err)
				} else {
					log.Printf("Config updated: %+v", msg.Config)
					statusMsg := ServerMessage{Type: "status", Config: msg.Config}
					safeConn.WriteJSON(statusMsg)
				}
			}

		case "reset":
			state.reset()
			log.Println("Scenario reset")
			cfg := state.getConfig()
			statusMsg := ServerMessage{Type: "status", Config: &cfg}
			safeConn.WriteJSON(statusMsg)
		}
	}

	log.Println("Client disconnected")
}

func serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		log.Printf("Error executing template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func quitHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Shutdown requested via /quitquitquit")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Server shutting down...")

	go func() {
		time.Sleep(100 * time.Millisecond)
		log.Println("Server stopped")
		os.Exit(0)
	}()
}

func main() {
	// Load templates
	templatePath := filepath.Join("templates", "index.html")
	var err error
	indexTemplate, err = template.ParseFiles(templatePath)
	if err != nil {
		log.Fatalf("Error loading template: %v", err)
	}
	log.Printf("Loaded template: %s", templatePath)

	initPrometheusMetrics()

	http.HandleFunc("/", serveHome)
	http.HandleFunc("/ws", handleWebSocket)
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/quitquitquit", quitHandler)

	addr := ":8080"
	log.Printf("Server starting on http://localhost%s", addr)
	log.Printf("WebSocket endpoint: ws://localhost%s/ws", addr)
	log.Printf("Prometheus endpoint: http://localhost%s/metrics", addr)
	log.Printf("Shutdown endpoint: http://localhost%s/quitquitquit", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

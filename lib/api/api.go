package api

//go:generate go tool swag init --generalInfo api.go --output docs --outputTypes go

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/trispin/trispin/lib/api/docs"
	"github.com/trispin/trispin/lib/config"
	"github.com/trispin/trispin/lib/metrics"
	"github.com/trispin/trispin/lib/spin"
	"github.com/trispin/trispin/lib/stats"
)

// @title			trispin
// @version		1.0
// @description	Control and status API of the spinning triangle demo
// @BasePath		/
type Api struct {
	srv     http.Server
	mux     *http.ServeMux
	cfg     *config.ApiCfg
	spinner *spin.Spinner
	quit    func()

	Stats *stats.Stats

	wsMutex   sync.Mutex
	wsClients map[*wsClient]struct{}
}

func New(cfg *config.ApiCfg, spinner *spin.Spinner, st *stats.Stats, quit func()) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.spinner = spinner
	a.quit = quit
	a.Stats = st
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*wsClient]struct{})

	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/spin", a.getSpin)
	a.mux.HandleFunc("PUT /api/spin", a.handleSpin)
	a.mux.HandleFunc("POST /api/spin", a.handleSpin)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) Shutdown(ctx context.Context) error {
	a.closeWebsockets()
	return a.srv.Shutdown(ctx)
}

// @Summary	Record a 10 second CPU profile
// @Router		/prof [get]
// @Tags		debug
// @Produce	octet-stream
// @Success	200
func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Stop the render loop and exit
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	logger().Info("shutting down as per api request")
	a.quit()
	writeJSON(w, "ok")
}

// @Summary	Get render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, a.Stats.Snapshot())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger().Error(fmt.Sprintf("could not write response: %s", err))
	}
}

func logger() *slog.Logger {
	return slog.Default().With(slog.String("module", "api"))
}

func ServeInBackground(cfg *config.ApiCfg, spinner *spin.Spinner, st *stats.Stats, quit func()) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg, spinner, st, quit)

		logger().Info(fmt.Sprintf("starting web server on %s", cfg.Bind))
		go func() {
			err := theApi.Serve()
			if err != nil && err != http.ErrServerClosed {
				logger().Error(fmt.Sprintf("web server stopped: %s", err))
			}
		}()
	}
	return theApi
}

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/jismesh/internal/geojson"
	"github.com/sells-group/jismesh/pkg/jismesh"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mesh code HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		r := chi.NewRouter()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/v1/meshcode", handleMeshcode)
		r.Get("/v1/meshpoint/{code}", handleMeshpoint)
		r.Get("/v1/level/{code}", handleLevel)
		r.Get("/v1/envelope", handleEnvelope)
		r.Get("/v1/intersects/{code}", handleIntersects)
		r.Get("/v1/geojson/{code}", handleGeoJSON)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// pathCode parses the {code} URL parameter.
func pathCode(r *http.Request) (jismesh.Code, error) {
	return jismesh.ParseCode(chi.URLParam(r, "code"))
}

func handleMeshcode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, eris.New("lat is required"))
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		writeError(w, eris.New("lon is required"))
		return
	}
	level, err := jismesh.ParseLevel(q.Get("level"))
	if err != nil {
		writeError(w, err)
		return
	}

	code, err := jismesh.Encode(lat, lon, level)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"code":  code.String(),
		"level": code.Level().String(),
	})
}

func handleMeshpoint(w http.ResponseWriter, r *http.Request) {
	code, err := pathCode(r)
	if err != nil {
		writeError(w, err)
		return
	}

	latMul, lonMul := 0.5, 0.5
	if v := r.URL.Query().Get("lat_mul"); v != "" {
		if latMul, err = strconv.ParseFloat(v, 64); err != nil {
			writeError(w, eris.New("invalid lat_mul"))
			return
		}
	}
	if v := r.URL.Query().Get("lon_mul"); v != "" {
		if lonMul, err = strconv.ParseFloat(v, 64); err != nil {
			writeError(w, eris.New("invalid lon_mul"))
			return
		}
	}

	lat, lon, err := jismesh.Decode(code.Value(), latMul, lonMul)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lat": lat, "lon": lon})
}

func handleLevel(w http.ResponseWriter, r *http.Request) {
	code, err := pathCode(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"code":  code.String(),
		"level": code.Level().String(),
		"size":  code.Level().SizeJP(),
	})
}

func handleEnvelope(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sw, err := jismesh.ParseCode(q.Get("sw"))
	if err != nil {
		writeError(w, err)
		return
	}
	ne, err := jismesh.ParseCode(q.Get("ne"))
	if err != nil {
		writeError(w, err)
		return
	}

	codes, err := jismesh.ToEnvelope(sw.Value(), ne.Value())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"codes": codes})
}

func handleIntersects(w http.ResponseWriter, r *http.Request) {
	code, err := pathCode(r)
	if err != nil {
		writeError(w, err)
		return
	}
	level, err := jismesh.ParseLevel(r.URL.Query().Get("level"))
	if err != nil {
		writeError(w, err)
		return
	}

	codes, err := jismesh.ToIntersects(code.Value(), level)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"codes": codes})
}

func handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	code, err := pathCode(r)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := geojson.Marshal([]jismesh.Code{code})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

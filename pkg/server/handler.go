/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SENERGY-Platform/reportobello-client/pkg/api"
	"github.com/SENERGY-Platform/reportobello-client/pkg/config"
	"github.com/SENERGY-Platform/reportobello-client/pkg/report_engine"
	"github.com/SENERGY-Platform/reportobello-client/pkg/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter sets up the viewer routes below cfg.URLPrefix.
func NewRouter(reportingClient *report_engine.Client, cfg config.Config) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetHTMLTemplate(api.ViewerTemplate)
	r.Use(gin.Recovery(), requestid.New(), requestLogger, cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}), api.ErrorHandler)
	prefix := r.Group(cfg.URLPrefix)
	api.SetRoutes(prefix, reportingClient)
	prefix.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	util.GetLogger().Debug("request",
		"request_id", requestid.Get(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

// StartAPI serves the viewer until ctx is done.
func StartAPI(ctx context.Context, reportingClient *report_engine.Client, cfg config.Config) error {
	addr := ":" + strconv.Itoa(cfg.ServerPort)
	if cfg.Debug {
		addr = "127.0.0.1" + addr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(reportingClient, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		util.GetLogger().Info("starting api server", "address", addr, "prefix", cfg.URLPrefix)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if lErr := <-errCh; lErr != nil && !errors.Is(lErr, http.ErrServerClosed) {
		return lErr
	}
	return err
}

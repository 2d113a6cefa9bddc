// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the fortune web service.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ianlewis/go-fortune"
)

// Server serves fortunes from a data directory over HTTP.
type Server struct {
	dataPath string
	opts     *fortune.Options
	logger   zerolog.Logger
}

// New returns a new Server for the fortune files in dataPath. opts may be
// nil.
func New(dataPath string, logger zerolog.Logger, opts *fortune.Options) *Server {
	return &Server{
		dataPath: dataPath,
		opts:     opts,
		logger:   logger,
	}
}

// Router returns a gin engine with the service's routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware(), LoggerMiddleware(s.logger), gin.Recovery())

	router.GET("/", s.FortuneHandler)
	router.GET("/info", s.InfoHandler)
	router.NoRoute(func(c *gin.Context) {
		SendError(c, http.StatusNotFound, ErrorCodeNotFound, "no such resource: "+c.Request.URL.Path)
	})

	return router
}

// FortuneHandler responds with a random fortune.
func (s *Server) FortuneHandler(c *gin.Context) {
	f, err := fortune.Random(s.dataPath, s.opts)
	if err != nil {
		s.sendFortuneError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// InfoHandler responds with the number of fortunes in each file.
func (s *Server) InfoHandler(c *gin.Context) {
	stats, err := fortune.Stats(s.dataPath)
	if err != nil {
		s.sendFortuneError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) sendFortuneError(c *gin.Context, err error) {
	if errors.Is(err, fortune.ErrNoFortunes) {
		SendError(c, http.StatusNotFound, ErrorCodeNoFortunes, "no fortunes available")
		return
	}

	s.logger.Error().
		Err(err).
		Str("request_id", c.GetString(requestIDKey)).
		Str("data_path", s.dataPath).
		Msg("reading fortunes")
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "failed to read fortunes")
}

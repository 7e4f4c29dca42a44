package main

import (
	"github.com/dbsapi/dbsapi"
	"github.com/dbsapi/dbsapi/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := gin.NewServer()
	s.Addr = c.Addr
	s.SchoolService = deps.Service
	s.Logger = deps.Logger

	if err := s.Open(); err != nil {
		return err
	}
	deps.Logger.Info("listening", "url", s.URL(), "target", dbsapi.HomeURL)

	<-deps.Ctx.Done()

	deps.Logger.Info("shutting down")
	return s.Close()
}

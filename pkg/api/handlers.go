package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-dataspace/maskgate/pkg/transform"
	"github.com/open-dataspace/maskgate/pkg/version"
)

const jsonContentType = "application/json; charset=utf-8"

// maskPayloadHandler handles POST /api/v1/mask. The request body is the
// inbound byte stream; the response body is the outbound masked stream.
// Engine-level failures (malformed JSON, non-object roots) fail open inside
// the engine and still produce a 200 with the original payload; transform
// failures fail closed with the reported problems and no payload.
func (s *Server) maskPayloadHandler(c *gin.Context) {
	var problems []string
	tr := transform.NewTransformer(s.service, transform.ProblemFunc(func(msg string) {
		problems = append(problems, msg)
	}))

	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxPayloadBytes)
	out, err := tr.Transform(body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "payload exceeds configured size limit",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    "masking transform failed",
			"problems": problems,
		})
		return
	}

	masked, err := io.ReadAll(out)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, jsonContentType, masked)
}

// maskValueHandler handles POST /api/v1/mask/value, the single-field
// convenience operation. The value passes through unchanged when the field
// is not eligible or no strategy matches.
func (s *Server) maskValueHandler(c *gin.Context) {
	var req MaskValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	masked := s.service.MaskValue(req.Field, req.Value)
	c.JSON(http.StatusOK, &MaskValueResponse{
		Field:  req.Field,
		Value:  masked,
		Masked: masked != req.Value,
	})
}

// statusHandler handles GET /api/v1/status.
func (s *Server) statusHandler(c *gin.Context) {
	stats := s.service.Stats()
	c.JSON(http.StatusOK, &StatusResponse{
		Enabled:    stats.Enabled,
		Fields:     stats.Fields,
		Strategies: stats.Strategies,
	})
}

// healthHandler handles GET /health. The service is stateless, so liveness
// is the only meaningful check.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Version: version.GitCommit,
	})
}

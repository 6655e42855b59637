package thermograph

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/chronobio/thermograph/assets"
	"github.com/chronobio/thermograph/export"
	"github.com/chronobio/thermograph/messages"
	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/summary"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func (c *Chart) setupServer() error {
	r := c.server

	r.GET("/", func(cg *gin.Context) {
		cg.Redirect(http.StatusMovedPermanently, "/index.html")
	})

	r.GET("/favicon.ico", func(cg *gin.Context) {
		cg.Status(204)
	})

	c.StaticFiles(assets.FS,
		"index.html", "text/html",
		"graphs.js", "application/javascript",
		"style.css", "text/css",
	)

	r.GET("/api/windows", c.handleWindows)
	r.GET("/api/summary", c.handleSummary)
	r.GET("/api/datasets", c.handleDatasets)
	r.POST("/api/import", c.handleImport)
	r.GET("/api/export.xlsx", c.handleExportXLSX)
	r.GET("/api/export.pdf", c.handleExportPDF)

	r.GET("/ws", c.handleWS)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return nil
}

func (c *Chart) RunServer(address string) error {
	if err := c.server.Run(address); err != nil {
		return errors.Wrap(err, "run")
	}
	return nil
}

func (c *Chart) StaticFiles(fsys fs.FS, files ...string) {
	for i := 0; i < len(files); i += 2 {
		name := files[i]
		ct := files[i+1]
		c.server.GET("/"+name, func(cg *gin.Context) {
			header := cg.Writer.Header()
			header["Content-Type"] = []string{ct}
			content, err := fs.ReadFile(fsys, name)
			if err != nil {
				cg.Status(404)
				return
			}
			_, _ = cg.Writer.Write(content)
		})
	}
}

// seriesFromQuery resolves either an expr parameter (parser syntax) or the
// discrete cohort/unit/from/to/win parameters into one aggregated series.
func (c *Chart) seriesFromQuery(cg *gin.Context) (schema.WindowSeries, error) {
	if expr := cg.Query("expr"); expr != "" {
		return c.SeriesForExpr(expr, 0)
	}

	view, err := viewFromQuery(cg)
	if err != nil {
		return schema.WindowSeries{}, err
	}
	return c.SeriesFor(view.Cohort, view.Operator(), view.WindowMinutes), nil
}

func (c *Chart) handleWindows(cg *gin.Context) {
	series, err := c.seriesFromQuery(cg)
	if err != nil {
		cg.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cg.JSON(http.StatusOK, series)
}

func (c *Chart) handleSummary(cg *gin.Context) {
	series, err := c.seriesFromQuery(cg)
	if err != nil {
		cg.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sum, err := summary.Compute(series.SeriesName, series.Windows)
	if err != nil {
		cg.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cg.JSON(http.StatusOK, sum)
}

func (c *Chart) handleDatasets(cg *gin.Context) {
	datasets, err := c.backend.ListDatasets()
	if err != nil {
		cg.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cg.JSON(http.StatusOK, gin.H{
		"current":  c.DatasetID(),
		"datasets": datasets,
	})
}

func (c *Chart) handleImport(cg *gin.Context) {
	path := cg.Query("path")
	if path == "" {
		path = c.cfg.CSVPath
	}

	ds, err := c.ImportCSV(path, cg.DefaultQuery("name", path))
	if err != nil {
		cg.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cg.JSON(http.StatusOK, ds)
}

func (c *Chart) handleExportXLSX(cg *gin.Context) {
	series, err := c.seriesFromQuery(cg)
	if err != nil {
		cg.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cg.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	cg.Header("Content-Disposition", fmt.Sprintf("attachment; filename=windows_%s.xlsx", series.SeriesName))
	if err := export.WriteXLSX(cg.Writer, series); err != nil {
		_ = cg.AbortWithError(http.StatusInternalServerError, err)
	}
}

func (c *Chart) handleExportPDF(cg *gin.Context) {
	series, err := c.seriesFromQuery(cg)
	if err != nil {
		cg.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sum, err := summary.Compute(series.SeriesName, series.Windows)
	if err != nil {
		cg.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cg.Header("Content-Type", "application/pdf")
	cg.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.pdf", series.SeriesName))
	if err := export.WritePDF(cg.Writer, series, sum); err != nil {
		_ = cg.AbortWithError(http.StatusInternalServerError, err)
	}
}

func (c *Chart) handleWS(cg *gin.Context) {
	ctx := cg.Request.Context()

	conn, err := websocket.Accept(cg.Writer, cg.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		_ = cg.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	defer func() {
		_ = conn.Close(websocket.StatusInternalError, "closed unexpectedly")
	}()

	var req messages.Request
	if err := wsjson.Read(ctx, conn, &req); err != nil {
		return
	}
	conn.CloseRead(ctx)

	wsClients.Inc()
	defer wsClients.Dec()

	expr := req.Expr
	if expr == "" {
		expr = c.cfg.DefaultCohort
	}

	cohort, op, err := c.parser.Parse(expr)
	if err != nil {
		_ = wsjson.Write(ctx, conn, &messages.Data{
			Error: errors.Wrap(err, "parse expression").Error(),
		})
		return
	}

	initial := c.SeriesFor(cohort, op, req.WindowMinutes)
	if err := wsjson.Write(ctx, conn, &messages.Data{
		Now:    time.Now().UnixMilli(),
		Series: []schema.WindowSeries{initial},
	}); err != nil {
		return
	}

	msgCh := c.broker.Subscribe()
	defer c.broker.Unsubscribe(msgCh)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgCh:
			if !ok {
				return
			}
			m, ok := msg.(schema.WindowSeries)
			if !ok || m.SeriesName != cohort.String() {
				continue
			}

			out := schema.WindowSeries{
				SeriesName: m.SeriesName,
				Unit:       initial.Unit,
				Windows:    op.ProcessWindows(m.Windows),
			}
			if err := wsjson.Write(ctx, conn, &messages.Data{
				Series: []schema.WindowSeries{out},
			}); err != nil {
				return
			}
		}
	}
}

package http

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
)

var funcs = template.FuncMap{
	"bytes": func(n int64) string {
		if n <= 0 {
			return "N/A"
		}
		return humanize.IBytes(uint64(n))
	},
}

var indexTmpl = template.Must(template.New("index").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Docker Host Info</title>
<style>
body { font-family: sans-serif; background: #f3f4f6; margin: 0; padding: 24px; }
h1 { text-align: center; }
.card { background: #fff; border-radius: 12px; box-shadow: 0 4px 12px rgba(0,0,0,.1); max-width: 56rem; margin: 0 auto 24px; padding: 24px; }
.card h2 { margin-top: 0; }
</style>
</head>
<body>
<h1>Docker Host Info</h1>
<div class="card">
  <h2>Host</h2>
  <p><strong>Name:</strong> {{.HostName}}</p>
  <p><strong>IP Address:</strong> {{.HostIP}}</p>
  <p><strong>Docker Version:</strong> {{.DockerVersion}}</p>
  <p><strong>Operating System:</strong> {{.OS}}</p>
  <p><strong>CPUs:</strong> {{.CPUs}}</p>
  <p><strong>Memory:</strong> {{bytes .MemTotal}}</p>
</div>
<div class="card">
  <h2>Swarm</h2>
  <p><strong>Node Type:</strong> {{.Swarm.NodeType}}</p>
  <p><strong>Node Role:</strong> {{.Swarm.NodeRole}}</p>
</div>
<div class="card">
  <h2>This Container</h2>
  <p><strong>Name:</strong> {{.Self.Name}}</p>
  <p><strong>ID:</strong> {{.Self.ID}}</p>
  <p><strong>IP:</strong> {{.Self.IP}}</p>
  <p><strong>Network:</strong> {{.Self.Network}}</p>
</div>
</body>
</html>
`))

// Index renders the host summary page.
func (h *InfoHandler) Index(c *fiber.Ctx) error {
	info, err := h.service.HostInfo(c.Context())
	if err != nil {
		slog.Error("host info failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load host info: " + err.Error())
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, info); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render page")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

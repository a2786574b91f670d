package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	errs "github.com/matzehuels/babelgallery/pkg/errors"
	"github.com/matzehuels/babelgallery/pkg/gallery"
	"github.com/matzehuels/babelgallery/pkg/io"
	"github.com/matzehuels/babelgallery/pkg/pipeline"
)

// msgLoadFailed is shown for every non-validation failure.
const msgLoadFailed = "Failed to load display content."

const immutable = "public, max-age=31536000, immutable"

// =============================================================================
// Rooms
// =============================================================================

type roomView struct {
	Room     int64
	Prev     int64
	Next     int64
	Displays []gallery.Summary
}

// handleRoom serves /, /room and /room/{room}. A missing or invalid room in
// the path or the query lands in room 1.
func (s *Server) handleRoom(w http.ResponseWriter, r *http.Request) {
	var room int64 = 1
	if p := chi.URLParam(r, "room"); p != "" {
		room = gallery.ParseRoomOrFirst(p)
	} else if q := r.URL.Query().Get("room"); q != "" {
		room = gallery.ParseRoomOrFirst(q)
	}

	ids, err := gallery.RoomDisplays(room)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view := roomView{Room: room, Displays: make([]gallery.Summary, 0, len(ids))}
	if room > 1 {
		view.Prev = room - 1
	}
	if room < gallery.MaxRoom {
		view.Next = room + 1
	}
	for _, id := range ids {
		sum, err := gallery.Summarize(id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		view.Displays = append(view.Displays, sum)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := roomTemplate.Execute(w, view); err != nil {
		s.logger.Error("render room", "room", room, "err", err)
	}
}

var roomTemplate = template.Must(template.New("room").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Room {{.Room}}</title></head>
<body>
<h1>Room {{.Room}}</h1>
<nav>
{{if .Prev}}<a href="/room/{{.Prev}}">&larr; Room {{.Prev}}</a>{{end}}
{{if .Next}}<a href="/room/{{.Next}}">Room {{.Next}} &rarr;</a>{{end}}
<form action="/room" method="get"><input name="room" size="8"><button>Go</button></form>
</nav>
{{range .Displays}}<figure id="display-{{.Display}}">
<a href="/display/{{.Display}}/view"><img src="/display/{{.Display}}/preview.jpg" alt="{{.Title}}"></a>
<figcaption>
<strong>{{.Title}}</strong> by {{.ArtistName}} ({{.Ratio.Name}})<br>
<small>Display {{.Display}}</small>
<p>{{.Description}}</p>
<a href="/display/{{.Display}}/details.txt">Download details</a>
</figcaption>
</figure>
{{end}}</body>
</html>
`))

// =============================================================================
// Displays
// =============================================================================

type displayLinks struct {
	Image   string `json:"image"`
	Preview string `json:"preview"`
	Details string `json:"details"`
	Page    string `json:"page"`
	Room    string `json:"room"`
}

type displayResponse struct {
	gallery.Summary
	Links displayLinks `json:"links"`
}

func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	res, ok := s.execute(w, r, pipeline.FormatJSON)
	if !ok {
		return
	}
	base := fmt.Sprintf("/display/%d", res.Summary.Display)
	resp := displayResponse{
		Summary: res.Summary,
		Links: displayLinks{
			Image:   base + "/image.png",
			Preview: base + "/preview.jpg",
			Details: base + "/details.txt",
			Page:    base + "/view",
			Room:    fmt.Sprintf("/room/%d", res.Summary.Room),
		},
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", immutable)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

type displayView struct {
	gallery.Summary
	Base string
}

// handleDisplayPage renders one display with its label, a download link for
// both files and a way back to its room.
func (s *Server) handleDisplayPage(w http.ResponseWriter, r *http.Request) {
	res, ok := s.execute(w, r, pipeline.FormatTXT)
	if !ok {
		return
	}
	view := displayView{
		Summary: res.Summary,
		Base:    fmt.Sprintf("/display/%d", res.Summary.Display),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := displayTemplate.Execute(w, view); err != nil {
		s.logger.Error("render display", "display", view.Display, "err", err)
	}
}

var displayTemplate = template.Must(template.New("display").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Display {{.Display}}</title></head>
<body>
<h1>Display {{.Display}}</h1>
<img src="{{.Base}}/image.png" alt="Generated artwork for Display {{.Display}}">
<h2>{{.Title}}</h2>
<p>by {{.ArtistName}}</p>
<p>{{.Description}}</p>
<nav>
<a href="/room/{{.Room}}">Go Back</a>
<a href="{{.Base}}/image.png" download>Download image</a>
<a href="{{.Base}}/details.txt" download>Download details</a>
</nav>
</body>
</html>
`))

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	res, ok := s.execute(w, r, pipeline.FormatTXT)
	if !ok {
		return
	}
	name := io.DetailsName(res.Summary.Display)
	s.writeArtifact(w, "text/plain; charset=utf-8", name, res.Artifacts[pipeline.FormatTXT])
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	res, ok := s.execute(w, r, pipeline.FormatPNG)
	if !ok {
		return
	}
	name := io.ImageName(res.Summary.Title, res.Summary.Display)
	s.writeArtifact(w, "image/png", name, res.Artifacts[pipeline.FormatPNG])
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	res, ok := s.execute(w, r, pipeline.FormatPreview)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", immutable)
	_, _ = w.Write(res.Artifacts[pipeline.FormatPreview])
}

// execute parses {id} and runs the pipeline for one format. On failure it
// writes the error response and returns false.
func (s *Server) execute(w http.ResponseWriter, r *http.Request, format string) (*pipeline.Result, bool) {
	display, err := gallery.ParseDisplay(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Display:      display,
		Formats:      []string{format},
		PreviewWidth: s.previewWidth,
	})
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return res, true
}

func (s *Server) writeArtifact(w http.ResponseWriter, contentType, filename string, data []byte) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(len(data)))
	h.Set("Cache-Control", immutable)
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}

// =============================================================================
// Errors
// =============================================================================

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := msgLoadFailed

	var rl *errs.RateLimitedError
	switch {
	case errors.As(err, &rl):
		status = http.StatusTooManyRequests
		msg = rl.Message
		if rl.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter))
		}
	case errs.IsValidation(err):
		status = http.StatusBadRequest
		msg = errs.UserMessage(err)
	case r.Context().Err() != nil:
		// Client went away; nobody reads the response.
		return
	default:
		s.logger.Error("request failed",
			"id", RequestID(r.Context()),
			"path", r.URL.Path,
			"err", err)
	}

	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:     msg,
		Code:      string(code),
		RequestID: RequestID(r.Context()),
	})
}

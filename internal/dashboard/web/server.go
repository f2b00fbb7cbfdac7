// Package web serves the dashboard as server-rendered HTML.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/straye-as/sales-dashboard/internal/dashboard"
	"github.com/straye-as/sales-dashboard/internal/dashboard/form"
	"github.com/straye-as/sales-dashboard/internal/dashboard/gateway"
	"github.com/straye-as/sales-dashboard/internal/dashboard/ui"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"github.com/straye-as/sales-dashboard/internal/export"
	"github.com/straye-as/sales-dashboard/internal/http/middleware"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// confirmWait bounds how long an action request waits for its confirmation
// dialog to open
const confirmWait = 2 * time.Second

// Server is the dashboard's HTTP surface
type Server struct {
	app    *dashboard.App
	logger *zap.Logger
	page   *template.Template

	mu       sync.Mutex
	inflight chan error // result of the action blocked on confirmation
}

// NewServer parses the page template and binds it to app
func NewServer(app *dashboard.App, logger *zap.Logger) (*Server, error) {
	page, err := template.New("page.html").Funcs(template.FuncMap{
		"sortTable":       sortTable,
		"headerKey":       headerKey,
		"headerIndicator": headerIndicator,
	}).ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, err
	}
	return &Server{app: app, logger: logger, page: page}, nil
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.Logging(s.logger))
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", s.index)
	r.Get("/views/{view}", s.navigate)
	r.Post("/actions", s.action)
	r.Post("/forms/{form}", s.submit)
	r.Post("/confirm", s.confirm)
	r.Get("/exports/{name}", s.download)
	return r
}

type container struct {
	ID      string
	Content ui.Content
}

type pageData struct {
	Active      dashboard.View
	Arg         string
	Views       []dashboard.View
	Containers  []container
	Toasts      []ui.Toast
	ModalOpen   bool
	ModalName   string
	ModalFields []form.Field
	ModalValues map[string]string
	Confirm     string
	Confirming  bool
	Loading     bool
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	active, arg := s.app.Active()
	data := pageData{
		Active:  active,
		Arg:     arg,
		Views:   dashboard.Views,
		Toasts:  s.app.Notifier().Drain(),
		Loading: s.app.Loading().Active(),
	}
	for _, id := range dashboard.Containers(active) {
		if c, ok := s.app.Document().Content(id); ok {
			data.Containers = append(data.Containers, container{ID: id, Content: c})
		}
	}

	name, values, open := s.app.Modal().State()
	if open {
		if f, ok := s.app.Forms().Form(name); ok {
			data.ModalOpen = true
			data.ModalName = name
			data.ModalFields = f.Fields
			data.ModalValues = values
		}
	}
	data.Confirm, data.Confirming = s.app.Confirm().Pending()

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) navigate(w http.ResponseWriter, r *http.Request) {
	v := dashboard.View(chi.URLParam(r, "view"))
	if err := s.app.Navigate(r.Context(), v, r.URL.Query().Get("id")); errors.Is(err, dashboard.ErrUnknownView) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	redirectHome(w, r)
}

// action dispatches the "action" field with the remaining fields as params.
// Actions that ask for confirmation keep running after the response; the
// page then shows the dialog and POST /confirm resumes them.
func (s *Server) action(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	name := r.PostForm.Get("action")
	if !s.app.HasAction(name) {
		http.Error(w, "Unknown action: "+name, http.StatusBadRequest)
		return
	}
	params := formValues(r.PostForm)
	delete(params, "action")

	if !dashboard.NeedsConfirmation(name) {
		if err := s.app.Dispatch(r.Context(), name, params); err != nil {
			s.logger.Debug("action failed", zap.String("action", name), zap.Error(err))
		}
		redirectHome(w, r)
		return
	}

	s.mu.Lock()
	if s.inflight != nil {
		s.mu.Unlock()
		http.Error(w, "Another confirmation is pending", http.StatusConflict)
		return
	}
	done := make(chan error, 1)
	s.inflight = done
	s.mu.Unlock()

	ctx := context.WithoutCancel(r.Context())
	go func() {
		err := s.app.Dispatch(ctx, name, params)
		s.mu.Lock()
		if s.inflight == done {
			s.inflight = nil
		}
		s.mu.Unlock()
		done <- err
	}()

	select {
	case <-s.app.Confirm().Opened():
	case <-done:
	case <-time.After(confirmWait):
	}
	redirectHome(w, r)
}

func (s *Server) confirm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	done := s.inflight
	s.mu.Unlock()

	if !s.app.Confirm().Resolve(r.PostForm.Get("answer") == "yes") {
		http.Error(w, "Nothing to confirm", http.StatusConflict)
		return
	}
	if done != nil {
		select {
		case err := <-done:
			if err != nil {
				s.logger.Debug("confirmed action failed", zap.Error(err))
			}
		case <-r.Context().Done():
		}
	}
	redirectHome(w, r)
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	_, err := s.app.SubmitForm(r.Context(), chi.URLParam(r, "form"), formValues(r.PostForm))
	switch {
	case errors.Is(err, form.ErrUnknownForm):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, form.ErrSubmitInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	redirectHome(w, r)
}

// download proxies an export from the backend
func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	gw := s.app.Gateway()
	var buf bytes.Buffer
	var disposition string
	switch chi.URLParam(r, "name") {
	case "leads":
		disposition, err = gw.ExportLeads(r.Context(), format, &buf)
	case "expenditure_report":
		filter := s.app.Store().ExpenditureReport().Filter()
		if start, end := r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"); start != "" && end != "" {
			if filter, err = parseRange(start, end); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		disposition, err = gw.ExportExpenditureReport(r.Context(), filter, format, &buf)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Warn("export failed", zap.String("export", chi.URLParam(r, "name")), zap.Error(err))
		status := http.StatusBadGateway
		var netErr *gateway.NetworkError
		if errors.As(err, &netErr) && netErr.Status >= 400 && netErr.Status < 500 {
			status = netErr.Status
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if disposition != "" {
		w.Header().Set("Content-Disposition", disposition)
	}
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func parseRange(start, end string) (domain.DateRange, error) {
	s, err := domain.ParseDate(start)
	if err != nil {
		return domain.DateRange{}, err
	}
	e, err := domain.ParseDate(end)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{StartDate: &s, EndDate: &e}, nil
}

func formValues(form url.Values) map[string]string {
	values := make(map[string]string, len(form))
	for k := range form {
		values[k] = form.Get(k)
	}
	return values
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// sortTable maps a container to the table name the sort action expects
func sortTable(containerID string) string {
	return containerTables[containerID]
}

func headerKey(c ui.Content, i int) string {
	if i < len(c.SortKeys) {
		return c.SortKeys[i]
	}
	return ""
}

func headerIndicator(c ui.Content, i int) string {
	if i < len(c.Indicators) {
		return c.Indicators[i]
	}
	return ""
}

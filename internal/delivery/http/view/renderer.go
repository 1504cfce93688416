// Package view - серверный рендеринг страниц сайта и админки.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/format"
	"github.com/cyprus-transfer/internal/pkg/pagination"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

//go:embed templates
var templatesFS embed.FS

const (
	publicLayout = "base"
	adminLayout  = "admin_base"
)

// Default map centre for the location picker (Cyprus)
const (
	DefaultMapLat = 35.1264
	DefaultMapLon = 33.4299
)

// Page - общие данные шаблона страницы
type Page struct {
	Title  string
	Active string
	CSRF   string
	Flash  string
	Error  string
	Status int
	Admin  string
	Data   interface{}
}

// PagerView - пагинация вместе с базовым адресом списка
type PagerView struct {
	pagination.Pager
	BaseURL string
}

// Renderer - набор страниц; каждая страница клонирует layout и partials
type Renderer struct {
	pages  map[string]*template.Template
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	base, err := template.New("").Funcs(funcs()).ParseFS(templatesFS,
		"templates/layouts/*.html",
		"templates/partials/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template), logger: logger}

	for _, dir := range []string{"pages", "admin"} {
		files, err := fs.Glob(templatesFS, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			t, err := base.Clone()
			if err != nil {
				return nil, err
			}
			if _, err := t.ParseFS(templatesFS, file); err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			name := dir + "/" + strings.TrimSuffix(path.Base(file), ".html")
			r.pages[name] = t
		}
	}

	return r, nil
}

// Render отрисовывает страницу name ("pages/home", "admin/expenses") со статусом status
func (r *Renderer) Render(c *fiber.Ctx, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	layout := publicLayout
	if strings.HasPrefix(name, "admin/") {
		layout = adminLayout
	}
	if page.Status == 0 {
		page.Status = status
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, page); err != nil {
		r.logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// Has - есть ли страница с таким именем
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"formatCurrency": format.FormatCurrency,
		"formatAmount":   format.FormatAmount,
		"formatDate":     format.FormatDate,
		"formatDateTime": format.FormatDateTime,
		"formatDuration": formatDurationPtr,
		"str":            derefString,
		"coord":          coord,
		"intOr":          intOr,
		"add":            func(a, b int) int { return a + b },
		"pager": func(p pagination.Pager, baseURL string) PagerView {
			return PagerView{Pager: p, BaseURL: baseURL}
		},
		"pageURL":     pageURL,
		"statuses":    func() []domain.ReservationStatus { return domain.ReservationStatuses },
		"statusClass": statusClass,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// coord - координата для поля формы; пусто, если не задана
func coord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}

func intOr(v *int, fallback string) string {
	if v == nil {
		return fallback
	}
	return strconv.Itoa(*v)
}

func formatDurationPtr(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return format.FormatDuration(*minutes)
}

// pageURL добавляет номер страницы к адресу списка с учётом уже заданных параметров
func pageURL(base string, page int) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "page=" + strconv.Itoa(page)
}

func statusClass(s domain.ReservationStatus) string {
	switch s {
	case domain.ReservationStatusPaid, domain.ReservationStatusCompleted:
		return "success"
	case domain.ReservationStatusConfirmed:
		return "info"
	case domain.ReservationStatusCancelled:
		return "danger"
	}
	return "warning"
}
